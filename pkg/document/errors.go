package document

import (
	"errors"
	"fmt"
)

// ErrValidation is the sentinel all ValidationErrors unwrap to, so callers
// can test with errors.Is without knowing the concrete type.
var ErrValidation = errors.New("validation error")

// ValidationError reports a violated document invariant. Path identifies the
// offending entity (e.g. "steps[2].ingredients[0]") and Field the offending
// field within it.
type ValidationError struct {
	Path   string
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	loc := e.Field
	if e.Path != "" {
		loc = e.Path + "." + e.Field
	}
	return fmt.Sprintf("%s: %s", loc, e.Reason)
}

// Unwrap supports errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func validationErr(path, field, reason string) *ValidationError {
	return &ValidationError{Path: path, Field: field, Reason: reason}
}
