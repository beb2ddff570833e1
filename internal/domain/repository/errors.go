package repository

import "errors"

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when an insert or update violates a
	// unique constraint (username, email).
	ErrDuplicate = errors.New("duplicate key")
)
