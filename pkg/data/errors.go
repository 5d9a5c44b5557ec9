package data

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no record exists for the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrConnection is returned when the backing store cannot be reached.
	ErrConnection = errors.New("connection error")
	// ErrDuplicate is returned when creating a record whose id is already taken.
	ErrDuplicate = errors.New("duplicate id")
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("validation failed")
)

// ValidationError reports the first field of a draft that failed validation.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
