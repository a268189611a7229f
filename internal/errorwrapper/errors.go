package errorwrapper

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration indicates configuration issues
var ErrInvalidConfiguration = errors.New("invalid configuration")

// WrapError wraps an error with additional context information
func WrapError(err error, message string) error {
	if err == nil {
		return fmt.Errorf("%s: <nil>", message)
	}
	return fmt.Errorf("%s: %w", message, err)
}

// NewError creates a new error with a formatted message
func NewError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// ValidationError represents validation errors with field-specific information
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// ParseError represents a failure to interpret boundary input such as a
// config file or analyzed content. The core URL functions do not produce
// it; they signal failure with zero values.
type ParseError struct {
	Input   string
	Reason  string
	Wrapped error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error for input '%s': %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}

// NewParseError creates a new parse error
func NewParseError(input, reason string, wrapped error) *ParseError {
	return &ParseError{
		Input:   input,
		Reason:  reason,
		Wrapped: wrapped,
	}
}
