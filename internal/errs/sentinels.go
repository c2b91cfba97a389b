// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., duplicate card in a deck).
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnauthorized indicates a missing or invalid bearer token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidRating indicates a rating outside Again..Easy (1..4).
	ErrInvalidRating = errors.New("invalid rating")

	// ErrInvalidUserID indicates an empty user identifier.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrInvalidArgument indicates any other rejected input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrStorage indicates a failed write; the operation was not recorded.
	ErrStorage = errors.New("storage failure")

	// ErrStorageRead indicates state needed by an operation could not be read.
	// Nothing was written.
	ErrStorageRead = errors.New("storage read failure")
)
