package store

import (
	"context"

	"github.com/dkrylov/animereview/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the data-access layer for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) error
	UpdatePassword(ctx context.Context, userID string, passwordHash string) error
	DeleteUser(ctx context.Context, userID string) error
}

// ReviewRepository is the data-access layer for anime reviews.
type ReviewRepository interface {
	// SaveReview upserts a review. A review without an ID, or with an ID
	// that matches no stored row, is inserted as a new record with a
	// freshly assigned identifier; otherwise the stored row is updated
	// in place. The persisted review is returned in both cases.
	SaveReview(ctx context.Context, review models.Review) (models.Review, error)
	GetAllReviews(ctx context.Context) ([]models.Review, error)
	GetReviewsByAnime(ctx context.Context, animeID int64) ([]models.Review, error)
	GetReviewsByUser(ctx context.Context, userID string) ([]models.Review, error)
	DeleteReview(ctx context.Context, reviewID string) error
	DeleteReviewsByUser(ctx context.Context, userID string) error
}

// KVStore is a namespaced key-value store for small application state:
// the persisted session token, UI preferences, and the favorites list.
// Values are serialized as JSON blobs.
type KVStore interface {
	Set(ctx context.Context, key string, value any) error
	// Get unmarshals the stored value into dest. Returns ErrKeyNotFound
	// when the key is absent.
	Get(ctx context.Context, key string, dest any) error
	// Remove deletes a key. Removing an absent key is a no-op.
	Remove(ctx context.Context, key string) error
	// Keys lists all stored keys with the namespace prefix stripped.
	Keys(ctx context.Context) ([]string, error)
	// Clear removes every namespaced key and re-seeds the default
	// collections (favorites, preferences, initialized marker).
	Clear(ctx context.Context) error
}

// IDGenerator produces unique identifiers for new records.
type IDGenerator interface {
	Generate() string
}
