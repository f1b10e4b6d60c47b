// Package errorspkg provides common app errors.
package errorspkg

import "errors"

var (
	// ErrInternal indicates internal server error.
	ErrInternal = errors.New("internal")
	// ErrValidation indicates malformed input rejected before any mutation.
	ErrValidation = errors.New("validation")
	// ErrNotFound indicates that no record matches the given keys.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a uniqueness violation.
	ErrConflict = errors.New("conflict")
)
