package service

import (
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/settings"
)

// SettingsService exposes the stored configuration to the HTTP front end.
type SettingsService struct {
	settingsPath string
}

// NewSettingsService creates a new SettingsService persisting settings at
// the given path.
func NewSettingsService(settingsPath string) *SettingsService {
	return &SettingsService{settingsPath: settingsPath}
}

// Get returns the stored configuration, falling back to defaults when no
// settings file exists yet.
func (s *SettingsService) Get() model.SettingsResponse {
	return toResponse(settings.Load(s.settingsPath))
}

// Update merges the request over the stored configuration, validates the
// result, and persists it. Nothing is written when validation fails.
func (s *SettingsService) Update(req model.SettingsUpdateRequest) (model.SettingsResponse, error) {
	cfg := settings.Load(s.settingsPath)

	if req.Length != nil {
		cfg.Length = *req.Length
	}
	cfg.Uppercase = boolOrDefault(req.Uppercase, cfg.Uppercase)
	cfg.Lowercase = boolOrDefault(req.Lowercase, cfg.Lowercase)
	cfg.Digits = boolOrDefault(req.Digits, cfg.Digits)
	cfg.Special = boolOrDefault(req.Special, cfg.Special)

	if err := cfg.Validate(); err != nil {
		return model.SettingsResponse{}, err
	}
	if err := validateLength(cfg.Length); err != nil {
		return model.SettingsResponse{}, err
	}

	if err := settings.Save(s.settingsPath, cfg); err != nil {
		return model.SettingsResponse{}, err
	}

	return toResponse(cfg), nil
}

func toResponse(cfg settings.Configuration) model.SettingsResponse {
	return model.SettingsResponse{
		Length:    cfg.Length,
		Uppercase: cfg.Uppercase,
		Lowercase: cfg.Lowercase,
		Digits:    cfg.Digits,
		Special:   cfg.Special,
	}
}
