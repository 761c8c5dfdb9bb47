package service

import "fmt"

// ValidationError indicates a request was rejected client-side before any
// network call was issued.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func scaleError(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "must be between 1 and 10"}
}
