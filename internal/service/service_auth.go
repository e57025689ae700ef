package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dkrylov/animereview/internal/config"
	"github.com/dkrylov/animereview/internal/logger"
	"github.com/dkrylov/animereview/internal/session"
	"github.com/dkrylov/animereview/internal/store"
	"github.com/dkrylov/animereview/internal/utils"
	"github.com/dkrylov/animereview/internal/validators"
	"github.com/dkrylov/animereview/models"
)

type authService struct {
	users     store.UserRepository
	reviews   store.ReviewRepository
	kv        store.KVStore
	session   *session.Session
	google    GoogleIdentity
	ids       store.IDGenerator
	validator validators.Validator
	cfg       config.Session
	logger    *logger.Logger
	now       func() time.Time
}

func NewAuthService(
	storages *store.Storages,
	sess *session.Session,
	google GoogleIdentity,
	cfg config.Session,
	logger *logger.Logger,
) AuthService {
	return &authService{
		users:     storages.UserRepository,
		reviews:   storages.ReviewRepository,
		kv:        storages.KV,
		session:   sess,
		google:    google,
		ids:       utils.NewUUIDGenerator(),
		validator: validators.NewDomainValidator(),
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

func (a *authService) Register(ctx context.Context, email, password, fullName string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	fullName = strings.TrimSpace(fullName)
	if password == "" {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyPassword)
	}

	candidate := models.User{Email: email, FullName: fullName, Provider: models.ProviderEmail}
	if err := a.validator.Validate(ctx, candidate); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("failed to hash password")
		return models.User{}, fmt.Errorf("hashing password: %w", err)
	}

	user := models.User{
		ID:           a.ids.Generate(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
		Provider:     models.ProviderEmail,
		CreatedAt:    a.now(),
	}

	created, err := a.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrDuplicateEmail
		}

		log.Err(err).Str("func", "*authService.Register").Msg("failed to create user")
		return models.User{}, fmt.Errorf("creating user: %w", err)
	}

	if err := a.openSession(ctx, created); err != nil {
		return models.User{}, err
	}

	log.Info().Str("func", "*authService.Register").Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := a.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// unknown email and wrong password answer the same
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("func", "*authService.Login").Msg("failed to look up user")
		return models.User{}, fmt.Errorf("finding user: %w", err)
	}

	if !utils.CheckPassword(password, user.PasswordHash) {
		return models.User{}, ErrInvalidCredentials
	}

	if err := a.openSession(ctx, user); err != nil {
		return models.User{}, err
	}

	log.Info().Str("func", "*authService.Login").Str("user_id", user.ID).Msg("user logged in")
	return user, nil
}

func (a *authService) LoginWithGoogle(ctx context.Context) (models.User, error) {
	log := logger.FromContext(ctx)

	email, fullName, photoURL, err := a.google.Identity(ctx)
	if err != nil {
		log.Err(err).Str("func", "*authService.LoginWithGoogle").Msg("identity provider failed")
		return models.User{}, fmt.Errorf("resolving google identity: %w", err)
	}

	user, err := a.users.FindUserByEmail(ctx, normalizeEmail(email))
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		user, err = a.users.CreateUser(ctx, models.User{
			ID:        a.ids.Generate(),
			Email:     normalizeEmail(email),
			FullName:  fullName,
			Provider:  models.ProviderGoogle,
			PhotoURL:  photoURL,
			CreatedAt: a.now(),
		})
		if err != nil {
			log.Err(err).Str("func", "*authService.LoginWithGoogle").Msg("failed to create google account")
			return models.User{}, fmt.Errorf("creating user: %w", err)
		}
	case err != nil:
		log.Err(err).Str("func", "*authService.LoginWithGoogle").Msg("failed to look up user")
		return models.User{}, fmt.Errorf("finding user: %w", err)
	}

	if err := a.openSession(ctx, user); err != nil {
		return models.User{}, err
	}

	log.Info().Str("func", "*authService.LoginWithGoogle").Str("user_id", user.ID).Msg("google user logged in")
	return user, nil
}

func (a *authService) RestoreSession(ctx context.Context) (models.User, error) {
	log := logger.FromContext(ctx)

	var tokenString string
	if err := a.kv.Get(ctx, store.KeySessionToken, &tokenString); err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return models.User{}, ErrNoStoredSession
		}

		log.Err(err).Str("func", "*authService.RestoreSession").Msg("failed to read persisted token")
		return models.User{}, fmt.Errorf("reading persisted token: %w", err)
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.cfg.TokenSignKey, a.cfg.TokenIssuer)
	if err != nil {
		// expired or tampered token: drop it and start cold
		log.Debug().Str("func", "*authService.RestoreSession").Msg("persisted token rejected")
		_ = a.kv.Remove(ctx, store.KeySessionToken)
		return models.User{}, ErrNoStoredSession
	}

	user, err := a.users.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			_ = a.kv.Remove(ctx, store.KeySessionToken)
			return models.User{}, ErrNoStoredSession
		}

		log.Err(err).Str("func", "*authService.RestoreSession").Msg("failed to reload user")
		return models.User{}, fmt.Errorf("finding user: %w", err)
	}

	a.session.Set(&user)

	log.Info().Str("func", "*authService.RestoreSession").Str("user_id", user.ID).Msg("session restored")
	return user, nil
}

func (a *authService) UpdateProfile(ctx context.Context, updates models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	current := a.session.Current()
	if current == nil {
		return models.User{}, ErrNoSession
	}

	user := *current
	if updates.FullName != nil {
		user.FullName = strings.TrimSpace(*updates.FullName)
	}
	if updates.PhotoURL != nil {
		user.PhotoURL = *updates.PhotoURL
	}

	if err := a.validator.Validate(ctx, user, validators.FieldFullName); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := a.users.UpdateUser(ctx, user); err != nil {
		log.Err(err).Str("func", "*authService.UpdateProfile").Msg("failed to update user")
		return models.User{}, fmt.Errorf("updating user: %w", err)
	}

	a.session.Set(&user)
	return user, nil
}

func (a *authService) ChangePassword(ctx context.Context, current, newPassword string) error {
	log := logger.FromContext(ctx)

	user := a.session.Current()
	if user == nil {
		return ErrNoSession
	}
	if user.Provider != models.ProviderEmail {
		return ErrWrongProvider
	}
	if newPassword == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyPassword)
	}
	if !utils.CheckPassword(current, user.PasswordHash) {
		return ErrWrongPassword
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Msg("failed to hash password")
		return fmt.Errorf("hashing password: %w", err)
	}

	if err := a.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Msg("failed to store new password")
		return fmt.Errorf("updating password: %w", err)
	}

	updated := *user
	updated.PasswordHash = hash
	a.session.Set(&updated)

	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	log := logger.FromContext(ctx)

	a.session.Set(nil)

	if err := a.kv.Remove(ctx, store.KeySessionToken); err != nil {
		log.Err(err).Str("func", "*authService.Logout").Msg("failed to remove persisted token")
		return fmt.Errorf("removing persisted token: %w", err)
	}

	return nil
}

func (a *authService) DeleteAccount(ctx context.Context) error {
	log := logger.FromContext(ctx)

	user := a.session.Current()
	if user == nil {
		return ErrNoSession
	}

	// reviews first so a crash in between never leaves authorless reviews
	if err := a.reviews.DeleteReviewsByUser(ctx, user.ID); err != nil {
		log.Err(err).Str("func", "*authService.DeleteAccount").Msg("failed to delete user reviews")
		return fmt.Errorf("deleting user reviews: %w", err)
	}

	if err := a.users.DeleteUser(ctx, user.ID); err != nil {
		log.Err(err).Str("func", "*authService.DeleteAccount").Msg("failed to delete user")
		return fmt.Errorf("deleting user: %w", err)
	}

	log.Info().Str("func", "*authService.DeleteAccount").Str("user_id", user.ID).Msg("account deleted")
	return a.Logout(ctx)
}

// openSession publishes the user to the session cell and persists a signed
// token so the session survives restarts.
func (a *authService) openSession(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(a.cfg.TokenIssuer, user.ID, a.cfg.TokenDuration, a.cfg.TokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.openSession").Msg("failed to issue session token")
		return fmt.Errorf("issuing session token: %w", err)
	}

	if err := a.kv.Set(ctx, store.KeySessionToken, token.String()); err != nil {
		log.Err(err).Str("func", "*authService.openSession").Msg("failed to persist session token")
		return fmt.Errorf("persisting session token: %w", err)
	}

	a.session.Set(&user)
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
