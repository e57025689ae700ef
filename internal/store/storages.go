package store

import (
	"context"
	"fmt"

	"github.com/dkrylov/animereview/internal/config"
	"github.com/dkrylov/animereview/internal/logger"
	"github.com/dkrylov/animereview/internal/utils"
)

// Storages groups all storage repositories into a single value that can be
// passed around the service layer.
type Storages struct {
	// UserRepository is the SQLite-backed repository for user accounts.
	UserRepository UserRepository

	// ReviewRepository is the SQLite-backed repository for anime reviews.
	ReviewRepository ReviewRepository

	// KV holds small application state: the persisted session token, UI
	// preferences and the favorites list.
	KV KVStore
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Seeds the key-value defaults when the database is fresh.
//  4. Constructs and returns a [Storages] value wired to fresh repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	kv, err := NewKVStore(ctx, db, logger)
	if err != nil {
		return nil, fmt.Errorf("key-value store init failed: %w", err)
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, logger),
		ReviewRepository: NewReviewRepository(db, utils.NewUUIDGenerator(), logger),
		KV:               kv,
	}, nil
}
