package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEnv_PopulatesNestedGroups verifies the envPrefix mapping for every
// configuration group.
func TestParseEnv_PopulatesNestedGroups(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "env.db")
	t.Setenv("CATALOG_BASE_URL", "https://env.example/v4")
	t.Setenv("CATALOG_REQUEST_TIMEOUT", "20s")
	t.Setenv("CATALOG_CACHE_TTL", "3m")
	t.Setenv("SESSION_TOKEN_SIGN_KEY", "env-key")
	t.Setenv("SESSION_TOKEN_ISSUER", "env-issuer")
	t.Setenv("SESSION_TOKEN_DURATION", "2h")
	t.Setenv("WORKERS_PRUNE_INTERVAL", "7m")

	cfg := &ClientConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://env.example/v4", cfg.Catalog.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.Catalog.RequestTimeout)
	assert.Equal(t, 3*time.Minute, cfg.Catalog.CacheTTL)
	assert.Equal(t, "env-key", cfg.Session.TokenSignKey)
	assert.Equal(t, "env-issuer", cfg.Session.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.Session.TokenDuration)
	assert.Equal(t, 7*time.Minute, cfg.Workers.PruneInterval)
}

// TestParseEnv_ConfigPath verifies the CONFIG variable mapping.
func TestParseEnv_ConfigPath(t *testing.T) {
	t.Setenv("CONFIG", "/tmp/cfg.json")

	cfg := &ClientConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/tmp/cfg.json", cfg.JSONFilePath)
}

// TestParseEnv_InvalidDuration verifies that a malformed duration value is
// reported as an error.
func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("CATALOG_CACHE_TTL", "not-a-duration")

	cfg := &ClientConfig{}
	err := parseEnv(cfg)
	require.Error(t, err)
}
