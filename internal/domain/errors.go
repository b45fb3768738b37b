package domain

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned by stores when no record matches the identifier,
	// including identifiers that are not well-formed for the backend.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is wrapped with a caller-facing detail message.
	ErrInvalidInput = errors.New("invalid input")
)

// Detail returns the caller-facing part of an ErrInvalidInput error.
func Detail(err error) string {
	return strings.TrimPrefix(err.Error(), ErrInvalidInput.Error()+": ")
}
