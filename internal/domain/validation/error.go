package validation

import (
	"errors"
	"strings"
)

// Error is a single validation failure.
type Error struct {
	Message string
}

// NewError creates a validation failure with the given message.
func NewError(message string) Error {
	return Error{Message: message}
}

func (e Error) String() string {
	return e.Message
}

// ValidationError is the structured failure carrying every accumulated
// validation error in the order it was reported.
type ValidationError struct {
	Message string
	Errors  []Error
}

// NewValidationError creates a structured validation failure. The errors are copied.
func NewValidationError(message string, errs []Error) *ValidationError {
	copied := make([]Error, len(errs))
	copy(copied, errs)
	return &ValidationError{
		Message: message,
		Errors:  copied,
	}
}

// NewSingleError creates a structured validation failure holding one error
// whose message is also the failure message.
func NewSingleError(err Error) *ValidationError {
	return NewValidationError(err.Message, []Error{err})
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return e.Message
	}
	messages := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		messages[i] = err.Message
	}
	return e.Message + ": " + strings.Join(messages, "; ")
}

// FirstError returns the first accumulated error, if any.
func (e *ValidationError) FirstError() (Error, bool) {
	if len(e.Errors) == 0 {
		return Error{}, false
	}
	return e.Errors[0], true
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// AsValidationError extracts the validation failure from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var target *ValidationError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
