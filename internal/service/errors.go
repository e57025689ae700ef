package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrDuplicateEmail is returned by Register when an account with the
	// given email already exists.
	ErrDuplicateEmail = errors.New("email is already registered")

	// ErrInvalidCredentials is returned by Login on any email/password
	// mismatch. An unknown email and a wrong password are deliberately
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrWrongPassword is returned by ChangePassword when the current
	// password does not verify.
	ErrWrongPassword = errors.New("wrong password")

	// ErrWrongProvider is returned when a password operation is attempted
	// on an account that has no local password.
	ErrWrongProvider = errors.New("operation not supported for this auth provider")

	// ErrNoSession is returned by operations requiring an authenticated
	// user when nobody is logged in.
	ErrNoSession = errors.New("no active session")

	// ErrNoStoredSession is returned by RestoreSession when no valid
	// persisted token exists. It is an expected cold-start condition, not
	// a failure.
	ErrNoStoredSession = errors.New("no stored session")

	// ErrAlreadyReviewed is returned by Save when the user already has a
	// review for the anime and the save does not target that review.
	ErrAlreadyReviewed = errors.New("user already reviewed this anime")
)
