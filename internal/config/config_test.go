package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T) {
	t.Helper()
	orig := os.Args
	os.Args = []string{"crewdeck"}
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetArgs(t)

	cfg := LoadConfig()
	require.Equal(t, "http://127.0.0.1:8080/api", cfg.BaseURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, "crewdeck.db", cfg.CredentialsDB)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("CREWDECK_BASE_URL", "https://env.example.com/api")
	t.Setenv("CREWDECK_TIMEOUT", "42s")
	t.Setenv("CREWDECK_DB", "env.db")

	cfg := LoadConfig()
	require.Equal(t, "https://env.example.com/api", cfg.BaseURL)
	require.Equal(t, 42*time.Second, cfg.RequestTimeout)
	require.Equal(t, "env.db", cfg.CredentialsDB)
}

func TestLoadConfig_InvalidTimeoutEnvIgnored(t *testing.T) {
	resetArgs(t)
	t.Setenv("CREWDECK_TIMEOUT", "soon")

	cfg := LoadConfig()
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	t.Setenv("CREWDECK_BASE_URL", "https://env.example.com/api")

	os.Args = []string{"crewdeck", "-a", "https://flag.example.com/api", "-t", "7"}

	cfg := LoadConfig()
	require.Equal(t, "https://flag.example.com/api", cfg.BaseURL)
	require.Equal(t, 7*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_JsonFile(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"base_url": "https://json.example.com/api",
		"request_timeout": "30s",
		"credentials_db": "json.db"
	}`), 0o600))

	os.Args = []string{"crewdeck", "-c", path}

	cfg := LoadConfig()
	require.Equal(t, "https://json.example.com/api", cfg.BaseURL)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, "json.db", cfg.CredentialsDB)
}

func TestLoadConfig_JsonPartialKeepsEarlierValues(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"base_url": "https://json.example.com/api"}`), 0o600))

	os.Args = []string{"crewdeck", "-c", path}

	cfg := LoadConfig()
	require.Equal(t, "https://json.example.com/api", cfg.BaseURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, "crewdeck.db", cfg.CredentialsDB)
}
