package model

import "fmt"

const CodeInvalidConstraints = "INVALID_CONSTRAINTS"

// InvalidConstraintsError reports a request that violates the data-model
// invariants. It is returned before any negotiation state exists, so it
// never carries a round log.
type InvalidConstraintsError struct {
	Field  string
	Reason string
}

func (e *InvalidConstraintsError) Error() string {
	return fmt.Sprintf("invalid constraints: %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *InvalidConstraintsError {
	return &InvalidConstraintsError{Field: field, Reason: reason}
}
