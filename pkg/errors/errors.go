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

// ValidationError captures a value that falls outside its declared domain,
// whether it comes from the config file or from a style update.
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

// UpdateError reports a rejected field update on one element's style record.
type UpdateError struct {
	Element string
	Field   string
	Err     error
}

// NewUpdateError constructs an UpdateError for the given element and field.
func NewUpdateError(element, field string, err error) error {
	return &UpdateError{Element: element, Field: field, Err: err}
}

func (e *UpdateError) Error() string {
	if e == nil {
		return ""
	}
	if e.Element != "" {
		return fmt.Sprintf("update error on %s.%s: %v", e.Element, e.Field, e.Err)
	}
	return fmt.Sprintf("update error on %s: %v", e.Field, e.Err)
}

// Unwrap exposes the root error.
func (e *UpdateError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
