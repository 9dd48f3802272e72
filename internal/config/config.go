package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/passforge/passforge-go/internal/settings"
)

type Config struct {
	Port         string
	Env          string
	LogLevel     string
	SettingsPath string
	RateRPS      float64
	RateBurst    int
}

func Load() Config {
	return Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		SettingsPath: getEnv("SETTINGS_PATH", settings.DefaultPath()),
		RateRPS:      getEnvFloat("RATE_RPS", 5),
		RateBurst:    getEnvInt("RATE_BURST", 10),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid value, using fallback", "key", key, "value", v)
		return fallback
	}
	return f
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid value, using fallback", "key", key, "value", v)
		return fallback
	}
	return n
}
