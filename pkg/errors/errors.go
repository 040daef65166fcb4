package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Rules configuration errors
	ErrConfigLoad     ErrorCode = "CONFIG_LOAD"
	ErrNoRootCategory ErrorCode = "NO_ROOT_CATEGORY"
	ErrInvalidPattern ErrorCode = "INVALID_PATTERN"

	// Category tree errors
	ErrTreeLoad  ErrorCode = "TREE_LOAD"
	ErrTreeParse ErrorCode = "TREE_PARSE"

	// Tool settings errors
	ErrSettingsLoad  ErrorCode = "SETTINGS_LOAD"
	ErrSettingsValid ErrorCode = "SETTINGS_INVALID"

	// Output and reload errors
	ErrExport ErrorCode = "EXPORT"
	ErrWatch  ErrorCode = "WATCH"
)

// InvError represents a structured error with code and details
type InvError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *InvError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *InvError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an InvError with the same code
func (e *InvError) Is(target error) bool {
	var targetErr *InvError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new InvError with the given code and message
func New(code ErrorCode, message string) *InvError {
	return &InvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new InvError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *InvError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with an InvError
func Wrap(err error, code ErrorCode, message string) *InvError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *InvError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *InvError) WithDetail(key string, value interface{}) *InvError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var invErr *InvError
	if errors.As(err, &invErr) {
		return invErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an InvError
func GetErrorCode(err error) ErrorCode {
	var invErr *InvError
	if errors.As(err, &invErr) {
		return invErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an InvError
func GetErrorDetails(err error) map[string]interface{} {
	var invErr *InvError
	if errors.As(err, &invErr) {
		return invErr.Details
	}
	return nil
}
