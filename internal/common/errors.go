// Package common defines sentinel errors shared across the repository,
// service and web layers of SkillSwap. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Registration conflicts, mapped from store uniqueness violations.
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Ownership errors (caller is not the owner/recipient of the entity).
	ErrForbidden = errors.New("forbidden")

	// Auth errors (invalid, malformed or expired session token).
	ErrInvalidToken = errors.New("invalid token")
)
