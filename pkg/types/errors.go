package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific error type
type ErrorCode string

const (
	// Card model errors
	ErrInvalidCard  ErrorCode = "INVALID_CARD"
	ErrInvalidIndex ErrorCode = "INVALID_INDEX"
	ErrUnknownName  ErrorCode = "UNKNOWN_NAME"

	// Argument errors
	ErrInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	ErrInvalidConfig   ErrorCode = "INVALID_CONFIG"

	// Pipeline errors
	ErrRecognition ErrorCode = "RECOGNITION_FAILED"
	ErrPublish     ErrorCode = "PUBLISH_FAILED"
)

// CardError represents an error raised by the card model or the
// layers that feed it
type CardError struct {
	Code    ErrorCode
	Message string
	Err     error // Underlying error, if any
}

// Error implements the error interface
func (e *CardError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *CardError) Unwrap() error {
	return e.Err
}

// NewCardError creates a new CardError
func NewCardError(code ErrorCode, message string) *CardError {
	return &CardError{
		Code:    code,
		Message: message,
	}
}

// NewCardErrorf creates a new CardError with a formatted message
func NewCardErrorf(code ErrorCode, format string, args ...interface{}) *CardError {
	return NewCardError(code, fmt.Sprintf(format, args...))
}

// WrapError wraps an existing error in a CardError
func WrapError(code ErrorCode, message string, err error) *CardError {
	return &CardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsCardError checks if any error in the chain is a CardError with a
// specific code
func IsCardError(err error, code ErrorCode) bool {
	for err != nil {
		var cardErr *CardError
		if !As(err, &cardErr) {
			return false
		}
		if cardErr.Code == code {
			return true
		}
		err = cardErr.Err
	}
	return false
}

// As finds the first CardError in the error chain
func As(err error, target **CardError) bool {
	if target == nil || err == nil {
		return false
	}
	return errors.As(err, target)
}
