package tui

import (
	"errors"
	"strings"

	"github.com/dkrylov/animereview/internal/adapter"
	"github.com/dkrylov/animereview/internal/service"
)

// humanizeError maps well-known service and adapter errors to short
// messages fit for the screen footer.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrFetchFailed):
		return "Could not reach the anime catalog. Check your connection and retry."
	case errors.Is(err, adapter.ErrNotFound):
		return "This title is not known to the catalog."
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Wrong email or password."
	case errors.Is(err, service.ErrDuplicateEmail):
		return "An account with this email already exists."
	case errors.Is(err, service.ErrWrongPassword):
		return "Current password is not correct."
	case errors.Is(err, service.ErrWrongProvider):
		return "Google accounts have no local password."
	case errors.Is(err, service.ErrAlreadyReviewed):
		return "You already reviewed this title."
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Please fill in all required fields."
	case errors.Is(err, service.ErrNoSession):
		return "You are not logged in."
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network unavailable."
	}

	return err.Error()
}
