package store

import "fmt"

// ValidationError means a required field was missing or malformed. It is
// raised before any mutation, so the collections are untouched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s is required", e.Field)
}

// NotFoundError means an operation referenced an id that is not in the
// collection. Non-fatal: callers surface it as a notice.
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}
