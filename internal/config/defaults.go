package config

import "time"

// Built-in fallback values. All of them can be overridden through any of the
// higher-priority sources.
const (
	DefaultDSN            = "animereview.db"
	DefaultCatalogBaseURL = "https://api.jikan.moe/v4"

	DefaultRequestTimeout = 10 * time.Second
	DefaultCacheTTL       = 5 * time.Minute
	DefaultPruneInterval  = 5 * time.Minute

	DefaultTokenIssuer   = "animereview-client"
	DefaultTokenDuration = 30 * 24 * time.Hour
)

func defaultConfig() *ClientConfig {
	return &ClientConfig{
		Session: Session{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Catalog: Catalog{
			BaseURL:        DefaultCatalogBaseURL,
			RequestTimeout: DefaultRequestTimeout,
			CacheTTL:       DefaultCacheTTL,
		},
		Workers: Workers{
			PruneInterval: DefaultPruneInterval,
		},
	}
}
