package domain

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is. Adapters map them onto transport status codes;
// nothing in this package knows about HTTP or exit codes.
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrUnrecognizedOption = errors.New("unrecognized option")
)

// NotFoundError names a lookup that had no answer, such as an unknown option
// kind.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Entity + " not found"
	}

	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFoundError returns a *NotFoundError.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError is a request rule violation, optionally tied to a field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}

	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError returns a *ValidationError.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// UnrecognizedOptionError reports a key missing from its catalog dictionary.
// Option is the request field: industry, style, logoStyle or colorScheme.
// It matches both ErrUnrecognizedOption and ErrValidation.
type UnrecognizedOptionError struct {
	Option string
	Value  string
}

func (e *UnrecognizedOptionError) Error() string {
	return fmt.Sprintf("unrecognized %s %q", e.Option, e.Value)
}

func (e *UnrecognizedOptionError) Unwrap() []error {
	return []error{ErrUnrecognizedOption, ErrValidation}
}

// NewUnrecognizedOptionError returns an *UnrecognizedOptionError.
func NewUnrecognizedOptionError(option, value string) error {
	return &UnrecognizedOptionError{Option: option, Value: value}
}

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsValidation reports whether err wraps ErrValidation. Unrecognized options
// count.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsUnrecognizedOption reports whether err wraps ErrUnrecognizedOption.
func IsUnrecognizedOption(err error) bool { return errors.Is(err, ErrUnrecognizedOption) }
