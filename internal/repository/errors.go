package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")

	// ErrAmbiguous is returned when an ID prefix matches more than one row.
	ErrAmbiguous = errors.New("ambiguous id prefix")

	// ErrDuplicate is returned when an insert violates a uniqueness rule.
	ErrDuplicate = errors.New("already exists")
)
