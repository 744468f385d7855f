package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrDuplicateSubmission = errors.New("duplicate submission")
	ErrDuplicateRating     = errors.New("duplicate rating")
	ErrConfiguration       = errors.New("configuration error")
)

// Aliases matching the authorization vocabulary.
var (
	ErrAuthenticationRequired = ErrUnauthorized
	ErrPermissionDenied       = ErrForbidden
)

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
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
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

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// DeniedError is returned by the authorization evaluator. Reason is safe to show to users.
type DeniedError struct {
	Kind   error
	Reason string
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func (e *DeniedError) Unwrap() error { return e.Kind }

// TransitionError reports a status change that the actor may not perform.
// Allowed is empty when the source status is locked for the actor.
type TransitionError struct {
	From    string
	To      string
	Allowed []string
}

func (e *TransitionError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("status %q cannot be changed by the owner", e.From)
	}
	return fmt.Sprintf("transition %q -> %q is not allowed; allowed: %s",
		e.From, e.To, strings.Join(e.Allowed, ", "))
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// DuplicateSubmissionError points at the existing advertisement that matched.
type DuplicateSubmissionError struct {
	ExistingID string
}

func (e *DuplicateSubmissionError) Error() string {
	return "a similar active advertisement already exists, check your existing listings"
}

func (e *DuplicateSubmissionError) Unwrap() error { return ErrDuplicateSubmission }

// ConfigurationError is fatal: a well-known reference row is missing from the store.
type ConfigurationError struct {
	Missing string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: required status %q is missing", e.Missing)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }
