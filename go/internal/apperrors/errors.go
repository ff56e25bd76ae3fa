package apperrors

import "errors"

var (
	// ErrNotFound is returned when a user or game session does not exist
	ErrNotFound = errors.New("not found")

	// ErrSessionCompleted is returned when stopping a session that has
	// already been stopped
	ErrSessionCompleted = errors.New("game session already completed")

	// ErrValidation is returned for malformed request parameters
	ErrValidation = errors.New("validation error")

	// ErrAlreadyExists is returned when a username or email is taken
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnauthorized is returned for bad credentials or tokens
	ErrUnauthorized = errors.New("unauthorized")
)
