// Package errors defines the typed errors shared by the configuration and
// restoration layers. The button core reports its own construction errors;
// everything crossing a file or store boundary lands here.
package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RestoreError indicates a failure loading or saving the persisted button
// configuration. Key names the snapshot property involved, when known.
type RestoreError struct {
	Key string
	Err error
}

// NewRestoreError constructs a RestoreError.
func NewRestoreError(key string, err error) error {
	return &RestoreError{Key: key, Err: err}
}

func (e *RestoreError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("restore error [%s]: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("restore error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *RestoreError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
