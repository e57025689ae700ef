package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dkrylov/animereview/internal/logger"
	"github.com/dkrylov/animereview/models"
)

// kvNamespace prefixes every key written by the application so the kv
// table can be cleared without touching rows owned by anyone else.
const kvNamespace = "animereview_"

// Well-known keys of the kv store.
const (
	KeySessionToken   = "session_token"
	KeySessionSignKey = "session_sign_key"
	KeyPreferences    = "preferences"
	KeyFavorites      = "favorites"
	KeyInitialized    = "initialized"
)

// kvStore is the SQLite-backed implementation of [KVStore]. Values are
// serialized as JSON blobs in the "kv" table, keyed with the
// [kvNamespace] prefix.
type kvStore struct {
	logger *logger.Logger
	db     *DB
}

// NewKVStore constructs a [KVStore] backed by the provided database
// connection. Default collections are seeded on first use, when the
// initialized marker is absent.
func NewKVStore(ctx context.Context, db *DB, logger *logger.Logger) (KVStore, error) {
	logger.Debug().Msg("creating key-value store")

	kv := &kvStore{db: db, logger: logger}

	var initialized bool
	err := kv.Get(ctx, KeyInitialized, &initialized)
	switch {
	case errors.Is(err, ErrKeyNotFound):
		if seedErr := kv.seedDefaults(ctx); seedErr != nil {
			return nil, seedErr
		}
	case err != nil:
		return nil, err
	}

	return kv, nil
}

// Set serializes value as JSON and stores it under the namespaced key,
// overwriting any previous value.
func (p *kvStore) Set(ctx context.Context, key string, value any) error {
	log := logger.FromContext(ctx)

	data, err := json.Marshal(value)
	if err != nil {
		log.Err(err).
			Str("func", "*kvStore.Set").
			Str("key", key).
			Msg("failed to serialize value")
		return fmt.Errorf("%w: %w", ErrSerializingValue, err)
	}

	if _, err = p.db.ExecContext(ctx, upsertKV, kvNamespace+key, string(data)); err != nil {
		log.Err(err).
			Str("func", "*kvStore.Set").
			Str("key", key).
			Msg("failed to execute kv upsert")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Get loads the value stored under the namespaced key and unmarshals it
// into dest. Returns ErrKeyNotFound when the key is absent.
func (p *kvStore) Get(ctx context.Context, key string, dest any) error {
	log := logger.FromContext(ctx)

	var data string
	row := p.db.QueryRowContext(ctx, findKVValue, kvNamespace+key)
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrKeyNotFound
		}

		log.Err(err).
			Str("func", "*kvStore.Get").
			Str("key", key).
			Msg("failed to scan kv row")
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		log.Err(err).
			Str("func", "*kvStore.Get").
			Str("key", key).
			Msg("failed to deserialize stored value")
		return fmt.Errorf("%w: %w", ErrDeserializingValue, err)
	}

	return nil
}

// Remove deletes the namespaced key. Removing an absent key is a no-op.
func (p *kvStore) Remove(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	if _, err := p.db.ExecContext(ctx, deleteKV, kvNamespace+key); err != nil {
		log.Err(err).
			Str("func", "*kvStore.Remove").
			Str("key", key).
			Msg("failed to execute kv delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Keys lists every stored key of the application namespace, with the
// prefix stripped.
func (p *kvStore) Keys(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := p.db.QueryContext(ctx, listKVKeys, kvNamespace+"%")
	if err != nil {
		log.Err(err).
			Str("func", "*kvStore.Keys").
			Msg("failed to execute kv keys query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0, 8)

	for rows.Next() {
		var key string
		if scanErr := rows.Scan(&key); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*kvStore.Keys").
				Msg("failed to scan kv key")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		keys = append(keys, strings.TrimPrefix(key, kvNamespace))
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*kvStore.Keys").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return keys, nil
}

// Clear removes every key of the application namespace and re-seeds the
// default collections.
func (p *kvStore) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := p.db.ExecContext(ctx, deleteKVByPrefix, kvNamespace+"%"); err != nil {
		log.Err(err).
			Str("func", "*kvStore.Clear").
			Msg("failed to execute kv clear")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return p.seedDefaults(ctx)
}

// seedDefaults writes the collections every fresh installation starts
// with: an empty favorites list, default preferences, and the
// initialized marker.
func (p *kvStore) seedDefaults(ctx context.Context) error {
	if err := p.Set(ctx, KeyFavorites, []string{}); err != nil {
		return err
	}
	if err := p.Set(ctx, KeyPreferences, models.DefaultPreferences()); err != nil {
		return err
	}

	return p.Set(ctx, KeyInitialized, true)
}
