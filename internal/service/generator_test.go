package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/settings"
)

func boolPtr(b bool) *bool { return &b }

func tempSettingsPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "settings.yaml")
}

func TestGenerate_DefaultsWithoutSettingsFile(t *testing.T) {
	svc := NewGeneratorService(tempSettingsPath(t))

	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 12 {
		t.Errorf("expected default length 12, got %d", resp.Length)
	}
	if len(resp.Password) != 12 {
		t.Errorf("expected password length 12, got %d", len(resp.Password))
	}
	if !resp.Saved {
		t.Error("expected settings to be saved")
	}
}

func TestGenerate_UsesStoredSettings(t *testing.T) {
	path := tempSettingsPath(t)
	stored := settings.Configuration{Length: 20, Uppercase: true, Digits: true}
	if err := settings.Save(path, stored); err != nil {
		t.Fatalf("seeding settings: %v", err)
	}

	svc := NewGeneratorService(path)
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 20 {
		t.Errorf("expected stored length 20, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			t.Errorf("unexpected character %q for uppercase+digits settings", c)
		}
	}
}

func TestGenerate_RequestOverridesStoredSettings(t *testing.T) {
	path := tempSettingsPath(t)
	if err := settings.Save(path, settings.Default()); err != nil {
		t.Fatalf("seeding settings: %v", err)
	}

	svc := NewGeneratorService(path)
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    32,
		Lowercase: boolPtr(false),
		Special:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			t.Errorf("unexpected character %q after disabling lowercase and special", c)
		}
	}
}

func TestGenerate_PersistsMergedSettings(t *testing.T) {
	path := tempSettingsPath(t)
	svc := NewGeneratorService(path)

	_, err := svc.Generate(model.GenerateRequest{Length: 16, Special: boolPtr(false)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := settings.Load(path)
	want := settings.Configuration{Length: 16, Uppercase: true, Lowercase: true, Digits: true, Special: false}
	if got != want {
		t.Errorf("persisted settings = %+v, want %+v", got, want)
	}
}

func TestGenerate_LengthTooShort(t *testing.T) {
	svc := NewGeneratorService(tempSettingsPath(t))

	_, err := svc.Generate(model.GenerateRequest{Length: 4})
	if !errors.Is(err, ErrLengthTooShort) {
		t.Fatalf("expected ErrLengthTooShort, got %v", err)
	}
}

func TestGenerate_LengthTooLong(t *testing.T) {
	svc := NewGeneratorService(tempSettingsPath(t))

	_, err := svc.Generate(model.GenerateRequest{Length: 200})
	if !errors.Is(err, ErrLengthTooLong) {
		t.Fatalf("expected ErrLengthTooLong, got %v", err)
	}
}

func TestGenerate_NoCharacterClasses(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{name: "valid length", length: 16},
		{name: "length below minimum", length: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewGeneratorService(tempSettingsPath(t))

			_, err := svc.Generate(model.GenerateRequest{
				Length:    tt.length,
				Uppercase: boolPtr(false),
				Lowercase: boolPtr(false),
				Digits:    boolPtr(false),
				Special:   boolPtr(false),
			})
			if !errors.Is(err, settings.ErrNoClassSelected) {
				t.Fatalf("expected ErrNoClassSelected, got %v", err)
			}
		})
	}
}

func TestGenerate_InvalidRequestDoesNotPersist(t *testing.T) {
	path := tempSettingsPath(t)
	stored := settings.Configuration{Length: 20, Uppercase: true, Digits: true}
	if err := settings.Save(path, stored); err != nil {
		t.Fatalf("seeding settings: %v", err)
	}

	svc := NewGeneratorService(path)
	_, err := svc.Generate(model.GenerateRequest{
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
		Digits:    boolPtr(false),
		Special:   boolPtr(false),
	})
	if err == nil {
		t.Fatal("expected error for all classes disabled")
	}

	if got := settings.Load(path); got != stored {
		t.Errorf("settings mutated on invalid request: %+v, want %+v", got, stored)
	}
}

func TestGenerate_SaveFailureStillReturnsPassword(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("writing blocker file: %v", err)
	}

	svc := NewGeneratorService(filepath.Join(blocker, "settings.yaml"))
	resp, err := svc.Generate(model.GenerateRequest{Length: 16})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Password) != 16 {
		t.Errorf("expected password length 16, got %d", len(resp.Password))
	}
	if resp.Saved {
		t.Error("expected Saved=false when the settings file cannot be written")
	}
}
