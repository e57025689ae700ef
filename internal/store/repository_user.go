package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dkrylov/animereview/internal/logger"
	"github.com/dkrylov/animereview/models"
)

// userRepository is the SQLite-backed implementation of [UserRepository].
// It handles user account creation, lookup, and mutation against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] as stored by the database.
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - SQLite unique-constraint violation on email → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.ID, user.Email, user.FullName, user.PasswordHash, user.Provider, user.PhotoURL, user.CreatedAt)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		if isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan saved user from db
	var saved models.User
	if err := row.Scan(&saved.ID, &saved.Email, &saved.FullName, &saved.PasswordHash, &saved.Provider, &saved.PhotoURL, &saved.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")

		if isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, err
	}

	return saved, nil
}

// FindUserByEmail retrieves the user record with the given email.
//
// Error handling:
//   - No matching row → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, findUserByEmail, email, "*userRepository.FindUserByEmail")
}

// FindUserByID retrieves the user record with the given identifier.
//
// Error handling mirrors [userRepository.FindUserByEmail].
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUser(ctx, findUserByID, id, "*userRepository.FindUserByID")
}

func (r *userRepository) findUser(ctx context.Context, query string, arg any, funcName string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&foundUser.ID, &foundUser.Email, &foundUser.FullName, &foundUser.PasswordHash, &foundUser.Provider, &foundUser.PhotoURL, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", funcName).Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}

// UpdateUser overwrites the mutable profile fields (full name, photo URL)
// of the stored user record.
//
// Returns [ErrUserNotFound] when no row matches user.ID.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateUser, user.FullName, user.PhotoURL, user.ID)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.UpdateUser").
			Str("user_id", user.ID).
			Msg("failed to execute user update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.requireAffectedRow(result, ErrUserNotFound)
}

// UpdatePassword overwrites the stored password hash of the given user.
//
// Returns [ErrUserNotFound] when no row matches userID.
func (r *userRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateUserPassword, passwordHash, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.UpdatePassword").
			Str("user_id", userID).
			Msg("failed to execute password update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.requireAffectedRow(result, ErrUserNotFound)
}

// DeleteUser removes the user record with the given identifier.
//
// Returns [ErrUserNotFound] when no row matches userID. Reviews authored by
// the user are not touched here; the cascade is the service layer's job.
func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.DeleteUser").
			Str("user_id", userID).
			Msg("failed to execute user delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.requireAffectedRow(result, ErrUserNotFound)
}

func (r *userRepository) requireAffectedRow(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}
