package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRejectsMissingDSN(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "k"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DSN")
}

func TestValidateRejectsMissingSecret(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.DatabaseDSN = "postgres://localhost/chronicle"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secret")
}

func TestValidateAccepted(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.DatabaseDSN = "postgres://localhost/chronicle"
	cfg.SecretKey = "k"

	assert.NoError(t, cfg.Validate())
}

func TestParseEnvOverlays(t *testing.T) {
	t.Setenv("CHRONICLE_DATABASE_DSN", "postgres://env/chronicle")
	t.Setenv("CHRONICLE_SESSION_VALIDITY", "90m")

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "postgres://env/chronicle", cfg.DatabaseDSN)
	assert.Equal(t, 90*time.Minute, cfg.SessionValidityDuration)
	// untouched default
	assert.Equal(t, ":8080", cfg.EndpointAddr)
}

func TestParseEnvRejectsBadDuration(t *testing.T) {
	t.Setenv("CHRONICLE_SESSION_VALIDITY", "soon")

	cfg := &Config{}
	cfg.LoadDefaults()
	assert.Error(t, parseEnv(cfg))
}

func TestParseJSONOverlays(t *testing.T) {
	raw, err := json.Marshal(map[string]any{
		"database_dsn":              "postgres://file/chronicle",
		"session_validity_duration": "6h",
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	oldArgs := os.Args
	os.Args = []string{"server", "-c", path}
	defer func() { os.Args = oldArgs }()

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, parseJSON(cfg))

	assert.Equal(t, "postgres://file/chronicle", cfg.DatabaseDSN)
	assert.Equal(t, 6*time.Hour, cfg.SessionValidityDuration)
	assert.Equal(t, ":8080", cfg.EndpointAddr)
}

func TestParseJSONMissingFile(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"server", "-c", "/does/not/exist.json"}
	defer func() { os.Args = oldArgs }()

	cfg := &Config{}
	cfg.LoadDefaults()
	assert.Error(t, parseJSON(cfg))
}
