package adapter

import "errors"

var (
	// ErrFetchFailed wraps transport, status, and decode failures of the
	// remote catalog. Callers match it to offer a retry instead of
	// rendering an empty list.
	ErrFetchFailed = errors.New("catalog fetch failed")

	// ErrNotFound is returned by ByID when the remote API has no record
	// for the requested id.
	ErrNotFound = errors.New("anime not found")
)
