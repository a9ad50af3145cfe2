package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed input detected by domain rules.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidTransition marks a move the status state machine does not allow.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// TransitionError reports a rejected status move.
type TransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: cannot move from %q to %q", e.Entity, e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ValidationError names the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
