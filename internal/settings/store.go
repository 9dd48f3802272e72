package settings

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load reads the configuration stored at path. A missing file, an unreadable
// file, or unparseable content all yield the built-in defaults: absence of a
// settings file is an expected first-run state, not a failure, so Load never
// returns an error.
func Load(path string) Configuration {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		slog.Debug("settings file unavailable, using defaults", "path", path, "error", err)
		return Default()
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		slog.Debug("settings file unparseable, using defaults", "path", path, "error", err)
		return Default()
	}

	return cfg
}

// Save serializes the configuration to path, creating parent directories as
// needed and overwriting any existing content. Write failures are returned to
// the caller.
func Save(path string, cfg Configuration) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings directory: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.Set("length", cfg.Length)
	v.Set("uppercase", cfg.Uppercase)
	v.Set("lowercase", cfg.Lowercase)
	v.Set("digits", cfg.Digits)
	v.Set("special", cfg.Special)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

// DefaultPath returns the conventional settings location for the shipped
// front ends: $XDG_CONFIG_HOME/passforge/settings.yaml, falling back to
// ~/.config/passforge/settings.yaml.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "passforge", "settings.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// No home directory to anchor to; fall back to the working directory.
		return "passforge-settings.yaml"
	}
	return filepath.Join(home, ".config", "passforge", "settings.yaml")
}

// setDefaults seeds a viper instance with the built-in configuration so a
// partial settings file is filled in rather than zeroed.
func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("length", def.Length)
	v.SetDefault("uppercase", def.Uppercase)
	v.SetDefault("lowercase", def.Lowercase)
	v.SetDefault("digits", def.Digits)
	v.SetDefault("special", def.Special)
}
