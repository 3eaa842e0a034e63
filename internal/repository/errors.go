package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when a create would violate userName/email
	// uniqueness.
	ErrDuplicate = errors.New("duplicate document")
)
