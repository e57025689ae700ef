package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail    = errors.New("invalid email address")
	ErrEmptyFullName   = errors.New("full name is required")
	ErrEmptyPassword   = errors.New("password is required")
	ErrUnknownProvider = errors.New("unknown auth provider")

	ErrInvalidAnimeID   = errors.New("invalid anime ID")
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 10")
	ErrCommentTooLong   = errors.New("comment is too long")
)
