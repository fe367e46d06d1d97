package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_ENV", "LOG_LEVEL", "SERVER_PORT",
	"SHIPMENTS_FILE", "CATALOG_FILE", "REFERENCE_TIME",
	"REDIS_URL", "BLOB_TTL_SECONDS",
	"SERPER_API_KEY", "SERPER_URL", "READER_URL", "BRAND_NAME", "BRAND_DOMAIN", "HTTP_TIMEOUT_SECONDS",
	"DELAY_SCAN_ENABLED", "DELAY_SCAN_SCHEDULE", "DELAY_SCAN_THRESHOLD",
}

// clearEnv unsets every key the loader reads and restores nothing; tests set what they need.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		os.Unsetenv(k)
	}
	t.Cleanup(func() {
		for _, k := range configKeys {
			os.Unsetenv(k)
		}
	})
}

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "2026-02-28T12:00:00Z", cfg.Data.ReferenceTime)
	assert.Empty(t, cfg.Data.ShipmentsFile)
	assert.Empty(t, cfg.Blob.RedisURL)
	assert.Equal(t, time.Duration(0), cfg.Blob.TTL())
	assert.Equal(t, "https://google.serper.dev", cfg.Search.URL)
	assert.Equal(t, 15*time.Second, cfg.Search.Timeout())
	assert.True(t, cfg.DelayScan.Enabled)
	assert.Equal(t, "@every 15m", cfg.DelayScan.Schedule)
	assert.Equal(t, "critical", cfg.DelayScan.Threshold)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	clearEnv(t)
	os.Setenv("APP_ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("REDIS_URL", "redis://localhost:6379/0")
	os.Setenv("BLOB_TTL_SECONDS", "3600")
	os.Setenv("SERPER_API_KEY", "key_123")
	os.Setenv("DELAY_SCAN_ENABLED", "false")
	os.Setenv("DELAY_SCAN_THRESHOLD", "high")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Blob.RedisURL)
	assert.Equal(t, time.Hour, cfg.Blob.TTL())
	assert.Equal(t, "key_123", cfg.Search.APIKey)
	assert.False(t, cfg.DelayScan.Enabled)
	assert.Equal(t, "high", cfg.DelayScan.Threshold)
}

// TestLoad_EmptyReferenceTime verifies that an explicitly empty reference time is kept.
func TestLoad_EmptyReferenceTime(t *testing.T) {
	clearEnv(t)
	os.Setenv("REFERENCE_TIME", "")

	cfg, err := Load(".")
	require.NoError(t, err)
	assert.Empty(t, cfg.Data.ReferenceTime)
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	clearEnv(t)
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
SHIPMENTS_FILE=/srv/data/shipments.json
REFERENCE_TIME=2026-03-01T00:00:00Z
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, "/srv/data/shipments.json", cfg.Data.ShipmentsFile)
	assert.Equal(t, "2026-03-01T00:00:00Z", cfg.Data.ReferenceTime)
}

// TestLoad_ValidationFailure verifies that missing required fields return an error.
func TestLoad_ValidationFailure(t *testing.T) {
	clearEnv(t)
	os.Setenv("SERVER_PORT", "0")

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "missing required configuration: SERVER_PORT")
}

// TestLoad_InvalidReferenceTime verifies that a malformed instant is rejected.
func TestLoad_InvalidReferenceTime(t *testing.T) {
	clearEnv(t)
	os.Setenv("REFERENCE_TIME", "28/02/2026")

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid REFERENCE_TIME")
}
