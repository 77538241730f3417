package repository

import "errors"

var (
	// ErrNotFound is returned when no record matches the lookup key.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when a create collides with the unique
	// email index. Exactly one of any set of concurrent creates succeeds.
	ErrDuplicateEmail = errors.New("duplicate email")
)
