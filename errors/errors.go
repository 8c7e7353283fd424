package errors

import "errors"

// Sentinel errors for common error conditions
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput indicates that input validation failed
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownRole indicates a message role outside the recognised set
	ErrUnknownRole = errors.New("unknown role")

	// ErrNoProvider indicates a client was built without a model provider
	ErrNoProvider = errors.New("no provider configured")
)
