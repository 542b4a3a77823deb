package models

import (
	"errors"
	"strings"
)

var (
	// ErrUnknownField is returned when a draft update names no known field.
	ErrUnknownField = errors.New("unknown booking field")
	// ErrDerivedField is returned when a draft update targets a computed field.
	ErrDerivedField = errors.New("field is computed and cannot be set directly")
)

// ValidationError is a local input error. It is never sent to the backend.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Reason
	}
	return e.Reason + ": " + strings.Join(e.Fields, ", ")
}

// NewValidationError builds a ValidationError for the named fields.
func NewValidationError(reason string, fields ...string) *ValidationError {
	return &ValidationError{Fields: fields, Reason: reason}
}
