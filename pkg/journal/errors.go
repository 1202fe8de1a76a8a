package journal

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is wrapped by every ValidationError.
	ErrValidation = errors.New("journal: validation error")
	// ErrNotFound is returned when no entry has the requested id.
	ErrNotFound = errors.New("journal: entry not found")
)

// ValidationError reports a draft that cannot be saved. The draft is left
// untouched so the caller can fix it and retry.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("journal: %s", e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ReasonEmptyReflection is the reason given when the draft text is blank.
const ReasonEmptyReflection = "empty reflection"
