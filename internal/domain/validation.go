package domain

import (
	"errors"
	"strings"
)

var (
	// ErrValidationFailed indicates that the input violates a field constraint.
	ErrValidationFailed = errors.New("validation failed")
	// ErrAmountExceedsTarget indicates that the current amount is greater than the target amount.
	ErrAmountExceedsTarget = errors.New("Current amount cannot exceed target amount")
)

// FieldViolation describes a single rejected field.
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError lists every field that prevented an entity from being created.
//
// errors.Is reports true for ErrValidationFailed and for the cause, if any.
type ValidationError struct {
	Violations []FieldViolation
	cause      error
}

// NewValidationError returns a ValidationError for the given violations.
func NewValidationError(violations ...FieldViolation) *ValidationError {
	return &ValidationError{Violations: violations}
}

// WithCause attaches the underlying rule error.
func (e *ValidationError) WithCause(err error) *ValidationError {
	e.cause = err
	return e
}

func (e *ValidationError) Error() string {
	if e.cause != nil && len(e.Violations) == 1 {
		return e.cause.Error()
	}

	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}

	return ErrValidationFailed.Error() + ": " + strings.Join(msgs, "; ")
}

// Is makes ValidationError match ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}

// Fields returns the names of the offending fields in order.
func (e *ValidationError) Fields() []string {
	fields := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		fields[i] = v.Field
	}

	return fields
}
