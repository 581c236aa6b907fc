package config

import "time"

// Config holds runtime settings for the Crewdeck CLI.
//
// Fields:
//   - BaseURL: root of the backend REST API, including the /api prefix.
//   - RequestTimeout: per-request timeout of the HTTP client.
//   - CredentialsDB: path of the local SQLite credentials database.
//     An empty value disables durable credential storage.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	CredentialsDB  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8080/api"
	c.RequestTimeout = 15 * time.Second
	c.CredentialsDB = "crewdeck.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
