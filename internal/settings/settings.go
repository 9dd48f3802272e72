package settings

import "errors"

// ErrNoClassSelected indicates a configuration with every character class
// disabled. Such a configuration must be rejected before generation and must
// never be persisted.
var ErrNoClassSelected = errors.New("at least one character class must be enabled")

// Configuration is the persisted record controlling password generation:
// the desired length and the four character-class inclusion flags.
type Configuration struct {
	Length    int  `mapstructure:"length"`
	Uppercase bool `mapstructure:"uppercase"`
	Lowercase bool `mapstructure:"lowercase"`
	Digits    bool `mapstructure:"digits"`
	Special   bool `mapstructure:"special"`
}

// Default returns the built-in configuration used before any settings file
// exists: 12 characters with all four classes enabled.
func Default() Configuration {
	return Configuration{
		Length:    12,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
		Special:   true,
	}
}

// Validate ensures the configuration can produce a password.
func (c Configuration) Validate() error {
	if !c.Uppercase && !c.Lowercase && !c.Digits && !c.Special {
		return ErrNoClassSelected
	}
	return nil
}
