package entity

import "errors"

// Sentinel errors shared across repositories, usecases and handlers.
// Handlers translate these into HTTP status codes.
var (
	ErrValidation       = errors.New("validation failed")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrForbidden        = errors.New("forbidden")
	ErrUserNotFound     = errors.New("user not found")
	ErrDuplicateEmail   = errors.New("user already exists with this email")
	ErrDonationNotFound = errors.New("donation not found")
	ErrAlreadyCollected = errors.New("donation already collected")
	ErrInvalidToken     = errors.New("invalid token")
)
