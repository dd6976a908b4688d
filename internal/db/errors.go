package db

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a task or session does not exist or
	// does not belong to the caller.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned for failed logins and bad tokens.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports missing or malformed input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError reports a uniqueness violation, such as a duplicate
// running-task marker or an already-taken username.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func conflictf(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}
