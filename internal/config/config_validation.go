package config

import "strings"

// validate checks that the final merged [ClientConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Catalog.BaseURL == "" || !strings.Contains(cfg.Catalog.BaseURL, "://") {
		return ErrInvalidCatalogConfigs
	}
	if cfg.Catalog.RequestTimeout <= 0 || cfg.Catalog.CacheTTL <= 0 {
		return ErrInvalidCatalogConfigs
	}

	if cfg.Session.TokenIssuer == "" || cfg.Session.TokenDuration <= 0 {
		return ErrInvalidSessionConfigs
	}

	if cfg.Workers.PruneInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
