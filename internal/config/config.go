package config

import (
	"time"
)

// ClientConfig is the top-level configuration container for the animereview
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, an optional JSON
// file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type ClientConfig struct {
	// Session holds the parameters used to sign and verify the locally
	// persisted session token.
	Session Session `envPrefix:"SESSION_"`

	// Storage holds configuration for the embedded SQLite database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Catalog holds settings for the remote anime metadata API client.
	Catalog Catalog `envPrefix:"CATALOG_"`

	// Workers holds configuration for background jobs (cache pruning).
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Session holds the signing parameters for the persisted session token.
// The token protects the local session blob against tampering; it is never
// sent to any server.
type Session struct {
	// TokenSignKey is the secret key used to sign and verify the session
	// token. Env: SESSION_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued session
	// token and validated on restore. Env: SESSION_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session remains restorable after
	// login (e.g. "720h"). Env: SESSION_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the embedded database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the embedded SQLite database.
type DB struct {
	// DSN is the SQLite file path (or ":memory:" for tests).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Catalog holds settings for the remote anime metadata API client.
type Catalog struct {
	// BaseURL is the root endpoint of the Jikan v4 API.
	// Env: CATALOG_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration allowed for a single catalog
	// request before it is cancelled (e.g. "10s").
	// Env: CATALOG_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CacheTTL is how long a cached catalog response stays fresh.
	// Env: CATALOG_CACHE_TTL
	CacheTTL time.Duration `env:"CACHE_TTL"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// PruneInterval defines how often expired catalog cache entries are
	// reclaimed. Env: WORKERS_PRUNE_INTERVAL
	PruneInterval time.Duration `env:"PRUNE_INTERVAL"`
}

// GetClientConfig loads, merges, and validates the client configuration from
// all available sources in the following priority order (earlier sources win
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *ClientConfig or an error if any source fails to
// load or the final config fails validation.
func GetClientConfig() (*ClientConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
