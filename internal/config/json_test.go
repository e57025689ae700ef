package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "string form", input: `"5m"`, expected: 5 * time.Minute},
		{name: "nanosecond number", input: `1000000000`, expected: time.Second},
		{name: "invalid string", input: `"five minutes"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(out))
}

func TestParseJSON_FullFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"session": map[string]any{
			"token_sign_key": "file-key",
			"token_issuer":   "file-issuer",
			"token_duration": "24h",
		},
		"storage": map[string]any{"db": map[string]any{"dsn": "file.db"}},
		"catalog": map[string]any{
			"base_url":        "https://file.example/v4",
			"request_timeout": "30s",
			"cache_ttl":       "10m",
		},
		"workers": map[string]any{"prune_interval": "15m"},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.Session.TokenSignKey)
	assert.Equal(t, "file-issuer", cfg.Session.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.Session.TokenDuration)
	assert.Equal(t, "file.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://file.example/v4", cfg.Catalog.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Catalog.RequestTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Catalog.CacheTTL)
	assert.Equal(t, 15*time.Minute, cfg.Workers.PruneInterval)
}
