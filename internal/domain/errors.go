package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers. Handlers map these to transport
// status codes; anything that does not unwrap to one of them is treated
// as a persistence or infrastructure fault.
var (
	ErrNotFound               = errors.New("not found")
	ErrAlreadyExists          = errors.New("already exists")
	ErrValidation             = errors.New("validation error")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrForbidden              = errors.New("forbidden")
	ErrUnknownEntity          = errors.New("unknown entity")
	ErrUnsupportedOperation   = errors.New("unsupported operation")
	ErrTransitionLocked       = errors.New("transition locked")
	ErrIllegalTransition      = errors.New("illegal transition")
	ErrConcurrentModification = errors.New("concurrent modification")
)

// UnknownEntityError reports a module name that does not resolve in the
// schema catalog. Name preserves the caller's original spelling.
type UnknownEntityError struct {
	Name string
}

func (e *UnknownEntityError) Error() string {
	return fmt.Sprintf("unknown module %q", e.Name)
}

func (e *UnknownEntityError) Unwrap() error { return ErrUnknownEntity }

// UnsupportedOperationError reports a lifecycle operation attempted on an
// entity that does not carry the required capability. Entity is the
// canonical name as stored in the catalog.
type UnsupportedOperationError struct {
	Entity     string
	Capability string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("entity %s does not support %s", e.Entity, e.Capability)
}

func (e *UnsupportedOperationError) Unwrap() error { return ErrUnsupportedOperation }

// TransitionLockedError reports a status change attempted on a lead that
// is already in a terminal state.
type TransitionLockedError struct {
	Status LeadStatus
}

func (e *TransitionLockedError) Error() string {
	return fmt.Sprintf("lead status %s is terminal, no further transitions allowed", e.Status)
}

func (e *TransitionLockedError) Unwrap() error { return ErrTransitionLocked }

// IllegalTransitionError reports a requested lead status transition that is
// not in the allowed set for the current status. Allowed enumerates the
// legal targets so the caller can self-correct.
type IllegalTransitionError struct {
	From    LeadStatus
	To      LeadStatus
	Allowed []LeadStatus
}

func (e *IllegalTransitionError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("cannot transition lead from %s to %s", e.From, e.To)
	}
	names := make([]string, len(e.Allowed))
	for i, s := range e.Allowed {
		names[i] = s.String()
	}
	return fmt.Sprintf("cannot transition lead from %s to %s (allowed: %s)",
		e.From, e.To, strings.Join(names, ", "))
}

func (e *IllegalTransitionError) Unwrap() error { return ErrIllegalTransition }

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}
