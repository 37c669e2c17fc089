// Package apperror defines the error taxonomy shared by every store
// operation. Callers match on the sentinel kinds with errors.Is; the
// message is safe to surface to end users.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrAlreadyExists = errors.New("already exists")
	// ErrUnauthorized is reserved. Roles are stored but the store never
	// enforces them; permission checks belong to the caller.
	ErrUnauthorized = errors.New("unauthorized")
)

// AppError pairs an error kind with a human-readable message.
type AppError struct {
	Err     error
	Message string
	Field   string // optional: the input field that failed validation
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound reports an absent referenced or queried entity.
func NotFound(format string, args ...any) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf(format, args...),
	}
}

// InvalidInput reports a required field that is empty, zero, or out of its
// declared range.
func InvalidInput(field, message string) *AppError {
	return &AppError{
		Err:     ErrInvalidInput,
		Message: message,
		Field:   field,
	}
}

// AlreadyExists reports a uniqueness violation.
func AlreadyExists(format string, args ...any) *AppError {
	return &AppError{
		Err:     ErrAlreadyExists,
		Message: fmt.Sprintf(format, args...),
	}
}

// Unauthorized reports a permission failure.
func Unauthorized(message string) *AppError {
	return &AppError{
		Err:     ErrUnauthorized,
		Message: message,
	}
}
