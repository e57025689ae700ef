package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/dkrylov/animereview/models"
)

const (
	FieldEmail    = "email"
	FieldFullName = "full_name"
	FieldProvider = "provider"
	FieldAnimeID  = "anime_id"
	FieldRating   = "rating"
	FieldComment  = "comment"
)

// maxCommentLength bounds review comments to keep rows and list
// rendering small.
const maxCommentLength = 1000

// DomainValidator validates account and review values. When no fields
// are given, every field of the value is checked.
type DomainValidator struct {
}

func NewDomainValidator() Validator {
	return &DomainValidator{}
}

func (v *DomainValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.Review:
		return v.validateReview(ctx, value, fields...)
	case *models.Review:
		return v.validateReview(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *DomainValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldFullName, FieldProvider}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if err := validEmail(user.Email); err != nil {
				return err
			}
		case FieldFullName:
			if strings.TrimSpace(user.FullName) == "" {
				return ErrEmptyFullName
			}
		case FieldProvider:
			if user.Provider != models.ProviderEmail && user.Provider != models.ProviderGoogle {
				return fmt.Errorf("%w: %q", ErrUnknownProvider, user.Provider)
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *DomainValidator) validateReview(_ context.Context, review models.Review, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAnimeID, FieldRating, FieldComment}
	}

	for _, field := range fields {
		switch field {
		case FieldAnimeID:
			if review.AnimeID <= 0 {
				return ErrInvalidAnimeID
			}
		case FieldRating:
			if review.Rating < 1 || review.Rating > 10 {
				return ErrRatingOutOfRange
			}
		case FieldComment:
			if len(review.Comment) > maxCommentLength {
				return ErrCommentTooLong
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

func validEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}

	return nil
}
