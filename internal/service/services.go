package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/dkrylov/animereview/internal/config"
	"github.com/dkrylov/animereview/internal/logger"
	"github.com/dkrylov/animereview/internal/session"
	"github.com/dkrylov/animereview/internal/store"
)

// Services groups the application services into a single value passed to
// the UI layer.
type Services struct {
	AuthService   AuthService
	ReviewService ReviewService
	Session       *session.Session
}

// NewServices wires the service layer on top of the storage layer. The
// Google identity provider is injected by the caller; production wiring
// passes the explicit stub.
//
// When the configuration carries no session token sign key, one is
// generated on first run and persisted in the kv store, so a
// default-configured client can still issue and verify session tokens.
func NewServices(ctx context.Context, storages *store.Storages, google GoogleIdentity, cfg config.Session, logger *logger.Logger) (*Services, error) {
	signKey, err := ensureTokenSignKey(ctx, storages.KV, cfg.TokenSignKey)
	if err != nil {
		return nil, fmt.Errorf("resolving session sign key: %w", err)
	}
	cfg.TokenSignKey = signKey

	sess := session.NewSession()

	return &Services{
		AuthService:   NewAuthService(storages, sess, google, cfg, logger),
		ReviewService: NewReviewService(storages.ReviewRepository, sess, logger),
		Session:       sess,
	}, nil
}

// ensureTokenSignKey returns the configured sign key when set, otherwise
// the key persisted in the kv store, generating and storing a fresh
// random one on first run.
func ensureTokenSignKey(ctx context.Context, kv store.KVStore, configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}

	var stored string
	err := kv.Get(ctx, store.KeySessionSignKey, &stored)
	if err == nil && stored != "" {
		return stored, nil
	}
	if err != nil && !errors.Is(err, store.ErrKeyNotFound) {
		return "", fmt.Errorf("reading persisted sign key: %w", err)
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generating sign key: %w", err)
	}
	generated := hex.EncodeToString(raw)

	if err := kv.Set(ctx, store.KeySessionSignKey, generated); err != nil {
		return "", fmt.Errorf("persisting sign key: %w", err)
	}

	return generated, nil
}
