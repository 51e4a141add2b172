// Package apperrors defines sentinel errors shared across the service and
// repository layers. Callers should match these values with errors.Is.
package apperrors

import "errors"

var (
	// Repository-level errors.
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")

	// Auth errors.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
)
