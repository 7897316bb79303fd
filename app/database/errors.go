package database

import "errors"

var (
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict means a delete was blocked because dependent records still
	// reference the target. The caller must remove the dependents first;
	// nothing is cascaded.
	ErrConflict = errors.New("record has dependents")
)
