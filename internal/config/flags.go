package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database file path (SQLite)
//	-catalog-url base URL of the remote anime metadata API
//	-request-timeout catalog request timeout (e.g., "10s")
//	-cache-ttl catalog cache time-to-live (e.g., "5m")
//	-prune-interval cache prune interval (e.g., "5m")
//	-token-sign-key session token signing key
//	-token-issuer session token issuer name
//	-token-duration session token duration (e.g., "720h")
//	-c/-config json file path with configs
func ParseFlags() *ClientConfig {
	var databaseDSN string
	var catalogURL string
	var requestTimeout time.Duration
	var cacheTTL time.Duration
	var pruneInterval time.Duration
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var jsonConfigPath string

	flag.StringVar(&databaseDSN, "d", "", "Database file path")
	flag.StringVar(&catalogURL, "catalog-url", "", "Anime catalog base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Catalog request timeout (e.g., 10s)")
	flag.DurationVar(&cacheTTL, "cache-ttl", 0, "Catalog cache TTL (e.g., 5m)")
	flag.DurationVar(&pruneInterval, "prune-interval", 0, "Cache prune interval (e.g., 5m)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Session token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Session token duration (e.g., 720h)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &ClientConfig{
		Session: Session{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Catalog: Catalog{
			BaseURL:        catalogURL,
			RequestTimeout: requestTimeout,
			CacheTTL:       cacheTTL,
		},
		Workers: Workers{
			PruneInterval: pruneInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
