package service

import (
	"fmt"
	"log/slog"

	"github.com/passforge/passforge-go/internal/generator"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/settings"
)

// Length bounds are a front-end policy: the generator accepts any positive
// length, but the API refuses requests outside the sensible range.
var (
	ErrLengthTooShort = fmt.Errorf("password length must be at least %d", generator.MinLength)
	ErrLengthTooLong  = fmt.Errorf("password length must be at most %d", generator.MaxLength)
)

// GeneratorService handles password generation for the HTTP front end.
// Each request follows the standard control flow: load the stored settings,
// apply the caller's edits, generate, and flush the merged settings back.
type GeneratorService struct {
	settingsPath string
}

// NewGeneratorService creates a new GeneratorService persisting settings at
// the given path.
func NewGeneratorService(settingsPath string) *GeneratorService {
	return &GeneratorService{settingsPath: settingsPath}
}

// Generate produces a password based on the given request, with omitted
// fields taken from the stored settings. On success the merged settings
// become the new stored settings; a failed flush is reported through the
// response rather than discarding the generated password.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	cfg := settings.Load(s.settingsPath)

	if req.Length != 0 {
		cfg.Length = req.Length
	}
	cfg.Uppercase = boolOrDefault(req.Uppercase, cfg.Uppercase)
	cfg.Lowercase = boolOrDefault(req.Lowercase, cfg.Lowercase)
	cfg.Digits = boolOrDefault(req.Digits, cfg.Digits)
	cfg.Special = boolOrDefault(req.Special, cfg.Special)

	if err := cfg.Validate(); err != nil {
		return model.GenerateResponse{}, err
	}
	if err := validateLength(cfg.Length); err != nil {
		return model.GenerateResponse{}, err
	}

	password, err := generator.Generate(generator.Options{
		Length:    cfg.Length,
		Uppercase: cfg.Uppercase,
		Lowercase: cfg.Lowercase,
		Digits:    cfg.Digits,
		Special:   cfg.Special,
	})
	if err != nil {
		return model.GenerateResponse{}, err
	}

	saved := true
	if err := settings.Save(s.settingsPath, cfg); err != nil {
		// Generation already completed; a failed flush must not discard it.
		slog.Warn("settings not saved after generation", "path", s.settingsPath, "error", err)
		saved = false
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Saved:    saved,
	}, nil
}

// validateLength enforces the front-end length policy.
func validateLength(n int) error {
	if n < generator.MinLength {
		return ErrLengthTooShort
	}
	if n > generator.MaxLength {
		return ErrLengthTooLong
	}
	return nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
