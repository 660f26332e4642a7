// Package apperror defines the error categories handlers translate into HTTP
// responses: validation (with a field breakdown), not found, conflict, and
// everything else, which surfaces as an opaque internal error.
package apperror

import (
	"errors"
	"fmt"
)

// Category sentinels, matched with errors.Is
var (
	ErrNotFound = errors.New("registro no encontrado")
	ErrConflict = errors.New("el registro ya existe")
)

type categorized struct {
	kind error
	msg  string
}

func (e *categorized) Error() string { return e.msg }
func (e *categorized) Unwrap() error { return e.kind }

// NotFound returns a not-found error carrying a human-readable message
func NotFound(msg string) error {
	return &categorized{kind: ErrNotFound, msg: msg}
}

// Conflict returns a conflict error carrying a human-readable message
func Conflict(msg string) error {
	return &categorized{kind: ErrConflict, msg: msg}
}

// FieldError reports a single invalid input field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries one or more field-level failures. It is checked
// synchronously before any persistence call.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return fmt.Sprintf("validación fallida: %s", e.Fields[0].Message)
	}
	return fmt.Sprintf("validación fallida en %d campos", len(e.Fields))
}

// NewValidation builds a single-field validation error
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// AsValidation unwraps err into a *ValidationError if it is one
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
