package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, an empty database path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCatalogConfigs indicates invalid catalog client settings
	// (for example, a base URL without a scheme or a zero timeout).
	ErrInvalidCatalogConfigs = errors.New("invalid catalog configuration")
	// ErrInvalidSessionConfigs indicates invalid session token settings
	// (for example, a missing issuer or zero token duration).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a zero prune interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
