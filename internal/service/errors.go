// Package service provides business logic for the application.
package service

import (
	"errors"
	"strings"
)

// Service errors.
var (
	ErrPasswordMismatch       = errors.New("password and confirmation do not match")
	ErrEmailTaken             = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUnauthenticated        = errors.New("missing or invalid session token")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
)

// ValidationError carries every field-level violation for one payload,
// collected together rather than one at a time.
type ValidationError struct {
	Messages []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// newValidationError wraps a non-empty violation list.
func newValidationError(messages []string) *ValidationError {
	return &ValidationError{Messages: messages}
}
