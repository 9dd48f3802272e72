package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	specialChars   = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// MinLength and MaxLength are the bounds front ends enforce before
	// calling Generate. Generate itself only rejects non-positive lengths.
	MinLength = 8
	MaxLength = 128
)

var (
	ErrNoClassSelected = errors.New("at least one character class must be selected")
	ErrInvalidLength   = errors.New("password length must be a positive integer")
)

// Options selects the password length and the character classes drawn from.
type Options struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Digits    bool
	Special   bool
}

// DefaultOptions returns the built-in defaults: 12 characters with all four
// classes enabled.
func DefaultOptions() Options {
	return Options{
		Length:    12,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
		Special:   true,
	}
}

// alphabet returns the union of the selected character classes, empty when
// no class is selected.
func (o Options) alphabet() string {
	var pool string
	if o.Uppercase {
		pool += uppercaseChars
	}
	if o.Lowercase {
		pool += lowercaseChars
	}
	if o.Digits {
		pool += digitChars
	}
	if o.Special {
		pool += specialChars
	}
	return pool
}

// Generate creates a cryptographically secure random password based on the
// given options. Each position is drawn independently and uniformly from the
// union of the selected classes, so any given class appears probabilistically
// rather than being guaranteed per call.
func Generate(opts Options) (string, error) {
	pool := opts.alphabet()
	if pool == "" {
		return "", ErrNoClassSelected
	}
	if opts.Length < 1 {
		return "", ErrInvalidLength
	}

	result := make([]byte, opts.Length)
	for i := range result {
		ch, err := randChar(pool)
		if err != nil {
			return "", fmt.Errorf("read entropy source: %w", err)
		}
		result[i] = ch
	}

	return string(result), nil
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}
