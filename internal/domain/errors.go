// Package domain defines the core study entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is usually wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an item ID is not a positive integer.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidOptionLetter is returned for a letter outside A-D.
	ErrInvalidOptionLetter = errors.New("invalid option letter")
)
