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
	ErrUnknown ErrorCode = "UNKNOWN"

	// Command line errors
	ErrUsage ErrorCode = "USAGE"

	// Environment errors
	ErrEnvLookup        ErrorCode = "ENV_LOOKUP"
	ErrUnsupportedShell ErrorCode = "UNSUPPORTED_SHELL"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileRead     ErrorCode = "FILE_READ"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
)

// SrapError represents a structured error with code and details
type SrapError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SrapError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SrapError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SrapError) Is(target error) bool {
	var targetErr *SrapError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SrapError with the given code and message
func New(code ErrorCode, message string) *SrapError {
	return &SrapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SrapError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SrapError {
	return &SrapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SrapError
func Wrap(err error, code ErrorCode, message string) *SrapError {
	if err == nil {
		return nil
	}
	return &SrapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SrapError {
	if err == nil {
		return nil
	}
	return &SrapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SrapError) WithDetail(key string, value interface{}) *SrapError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var srapErr *SrapError
	if errors.As(err, &srapErr) {
		return srapErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SrapError
func GetErrorCode(err error) ErrorCode {
	var srapErr *SrapError
	if errors.As(err, &srapErr) {
		return srapErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SrapError
func GetErrorDetails(err error) map[string]interface{} {
	var srapErr *SrapError
	if errors.As(err, &srapErr) {
		return srapErr.Details
	}
	return nil
}

// Describe renders an error for people rather than tests: the code tag is
// dropped and the wrapped cause, if any, follows the message.
func Describe(err error) string {
	var srapErr *SrapError
	if !errors.As(err, &srapErr) {
		return err.Error()
	}
	if srapErr.Wrapped != nil {
		return fmt.Sprintf("%s: %v", srapErr.Message, srapErr.Wrapped)
	}
	return srapErr.Message
}
