package db

import "errors"

var (
	// ErrNotFound means the document id did not resolve.
	ErrNotFound = errors.New("document not found")
	// ErrUnavailable means the backend could not be reached or failed
	// transiently. Reads are safe to retry at the caller's discretion;
	// writes are not retried anywhere in this codebase, since a
	// replayed comment append or like toggle would duplicate.
	ErrUnavailable = errors.New("storage unavailable")
	// ErrDuplicateId means a create collided with an existing id.
	ErrDuplicateId = errors.New("duplicate id")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
