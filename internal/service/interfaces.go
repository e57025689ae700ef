package service

import (
	"context"

	"github.com/dkrylov/animereview/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService defines the contract for account lifecycle and session
// management. It is the single writer of the session cell.
type AuthService interface {
	// Register creates a new email/password account, opens a session for
	// it, and persists a session token for later restore.
	// Returns ErrDuplicateEmail when the email is taken and
	// ErrInvalidDataProvided when a required field is blank.
	Register(ctx context.Context, email, password, fullName string) (models.User, error)

	// Login authenticates an email/password account and opens a session.
	// Returns ErrInvalidCredentials on any mismatch; an unknown email is
	// not distinguishable from a wrong password.
	Login(ctx context.Context, email, password string) (models.User, error)

	// LoginWithGoogle resolves an identity through the configured
	// GoogleIdentity provider and opens a session for it, creating the
	// local account on first login.
	LoginWithGoogle(ctx context.Context) (models.User, error)

	// RestoreSession validates the persisted session token and, when it
	// still maps to an existing account, repopulates the session cell.
	// Returns ErrNoStoredSession when no valid token is persisted.
	RestoreSession(ctx context.Context) (models.User, error)

	// UpdateProfile applies the non-nil fields of updates to the current
	// user's row and to the session mirror. Returns ErrNoSession when
	// nobody is logged in.
	UpdateProfile(ctx context.Context, updates models.ProfileUpdate) (models.User, error)

	// ChangePassword verifies the current password and stores a hash of
	// the new one. Returns ErrWrongProvider for accounts without a local
	// password and ErrWrongPassword when current does not verify.
	ChangePassword(ctx context.Context, current, newPassword string) error

	// Logout clears the session cell and the persisted token. Stored
	// account data is untouched.
	Logout(ctx context.Context) error

	// DeleteAccount removes the current user's row, cascades the delete
	// to their reviews, and logs out.
	DeleteAccount(ctx context.Context) error
}

// GoogleIdentity resolves an externally authenticated Google account.
// The production build carries no real implementation; the wiring
// injects StubGoogleIdentity, which always succeeds with a fixed
// profile.
type GoogleIdentity interface {
	Identity(ctx context.Context) (email, fullName, photoURL string, err error)
}

// ReviewService defines the contract for creating and querying anime
// reviews.
type ReviewService interface {
	// Save persists the review for the current user. When the user has
	// already reviewed the anime, a review without an ID (or carrying the
	// stored review's ID) edits the stored review in place; a review
	// carrying any other ID fails with ErrAlreadyReviewed. Returns
	// ErrNoSession when nobody is logged in.
	Save(ctx context.Context, review models.Review) (models.Review, error)

	All(ctx context.Context) ([]models.Review, error)
	ByAnime(ctx context.Context, animeID int64) ([]models.Review, error)
	ByUser(ctx context.Context, userID string) ([]models.Review, error)

	// Delete removes a review by id. Deleting an absent review is a
	// no-op.
	Delete(ctx context.Context, reviewID string) error

	// HasUserReviewed reports whether the user has a stored review for
	// the anime.
	HasUserReviewed(ctx context.Context, userID string, animeID int64) (bool, error)

	// UserReviewForAnime returns the user's review for the anime, or
	// ok=false when none exists.
	UserReviewForAnime(ctx context.Context, userID string, animeID int64) (models.Review, bool, error)

	// AverageRating computes the mean rating rounded to one decimal
	// place. An empty slice yields 0.
	AverageRating(reviews []models.Review) float64
}
