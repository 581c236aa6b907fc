package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment,
// after loading a .env file from the working directory if one exists.
//
// Recognized variables:
//
//	CREWDECK_BASE_URL   — backend API root
//	CREWDECK_TIMEOUT    — request timeout as a duration string ("15s")
//	CREWDECK_DB         — credentials database path
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("CREWDECK_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("CREWDECK_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("CREWDECK_DB"); v != "" {
		cfg.CredentialsDB = v
	}
}
