package learninglogs

import (
	"errors"
	"fmt"
)

// Error represents a learning logs error with categorization.
type Error struct {
	// Code is a machine-readable error code
	Code string

	// Message is a human-readable error message
	Message string

	// Err is the underlying error (if any)
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Error codes for learning logs operations.
const (
	// ErrCodeConnection indicates no working connection to the database could be obtained.
	ErrCodeConnection = "CONNECTION_ERROR"

	// ErrCodePersistence indicates a statement failed on a valid connection.
	ErrCodePersistence = "PERSISTENCE_ERROR"

	// ErrCodeValidation indicates validation failed.
	ErrCodeValidation = "VALIDATION_ERROR"

	// ErrCodeConfiguration indicates invalid configuration.
	ErrCodeConfiguration = "CONFIGURATION_ERROR"
)

// NewError creates a new Error with the given code and message.
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// NewErrorWithCause creates a new Error wrapping an underlying error.
func NewErrorWithCause(code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     cause,
	}
}

// IsConnection checks if an error is a connection error.
func IsConnection(err error) bool {
	return hasCode(err, ErrCodeConnection)
}

// IsPersistence checks if an error is a persistence error.
func IsPersistence(err error) bool {
	return hasCode(err, ErrCodePersistence)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return hasCode(err, ErrCodeValidation)
}

func hasCode(err error, code string) bool {
	var llErr *Error
	if errors.As(err, &llErr) {
		return llErr.Code == code
	}
	return false
}
