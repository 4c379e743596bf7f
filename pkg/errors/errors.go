// Package errors provides the coded error type used across loadout.
//
// Codes are stable strings so tests and callers can branch on the kind of
// failure without matching message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// List file errors
	ErrListNotFound ErrorCode = "LIST_NOT_FOUND"
	ErrListRead     ErrorCode = "LIST_READ"
	ErrListWrite    ErrorCode = "LIST_WRITE"

	// Category errors
	ErrCategoryUnknown ErrorCode = "CATEGORY_UNKNOWN"

	// External command errors
	ErrCommandNotFound ErrorCode = "COMMAND_NOT_FOUND"
	ErrCommandFailed   ErrorCode = "COMMAND_FAILED"
	ErrCommandCanceled ErrorCode = "COMMAND_CANCELED"

	// Plugin manifest errors
	ErrManifestNotFound ErrorCode = "MANIFEST_NOT_FOUND"
	ErrManifestParse    ErrorCode = "MANIFEST_PARSE"
)

// LoadoutError represents a structured error with code and details
type LoadoutError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LoadoutError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LoadoutError) Unwrap() error {
	return e.Wrapped
}

// Is matches any LoadoutError carrying the same code.
func (e *LoadoutError) Is(target error) bool {
	var targetErr *LoadoutError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LoadoutError with the given code and message
func New(code ErrorCode, message string) *LoadoutError {
	return &LoadoutError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LoadoutError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LoadoutError {
	return &LoadoutError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *LoadoutError {
	if err == nil {
		return nil
	}
	return &LoadoutError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LoadoutError {
	if err == nil {
		return nil
	}
	return &LoadoutError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LoadoutError) WithDetail(key string, value interface{}) *LoadoutError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var loadoutErr *LoadoutError
	if errors.As(err, &loadoutErr) {
		return loadoutErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LoadoutError
func GetErrorCode(err error) ErrorCode {
	var loadoutErr *LoadoutError
	if errors.As(err, &loadoutErr) {
		return loadoutErr.Code
	}
	return ErrUnknown
}

// GetErrorMessage returns the message of the outermost LoadoutError, or the
// plain error text.
func GetErrorMessage(err error) string {
	var loadoutErr *LoadoutError
	if errors.As(err, &loadoutErr) {
		return loadoutErr.Message
	}
	return err.Error()
}

// GetErrorDetails returns the details from an error, or nil if not a LoadoutError
func GetErrorDetails(err error) map[string]interface{} {
	var loadoutErr *LoadoutError
	if errors.As(err, &loadoutErr) {
		return loadoutErr.Details
	}
	return nil
}
