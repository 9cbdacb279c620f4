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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Markup errors
	ErrParse  ErrorCode = "PARSE"
	ErrRender ErrorCode = "RENDER"

	// Theme errors
	ErrThemeLoad  ErrorCode = "THEME_LOAD"
	ErrThemeParse ErrorCode = "THEME_PARSE"

	// IO errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrWatch     ErrorCode = "WATCH"
)

// TamlError represents a structured error with code and details
type TamlError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TamlError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TamlError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TamlError) Is(target error) bool {
	var targetErr *TamlError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TamlError with the given code and message
func New(code ErrorCode, message string) *TamlError {
	return &TamlError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TamlError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TamlError {
	return &TamlError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TamlError
func Wrap(err error, code ErrorCode, message string) *TamlError {
	if err == nil {
		return nil
	}
	return &TamlError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TamlError {
	if err == nil {
		return nil
	}
	return &TamlError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TamlError) WithDetail(key string, value interface{}) *TamlError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *TamlError) WithDetails(details map[string]interface{}) *TamlError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tamlErr *TamlError
	if errors.As(err, &tamlErr) {
		return tamlErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TamlError
func GetErrorCode(err error) ErrorCode {
	var tamlErr *TamlError
	if errors.As(err, &tamlErr) {
		return tamlErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TamlError
func GetErrorDetails(err error) map[string]interface{} {
	var tamlErr *TamlError
	if errors.As(err, &tamlErr) {
		return tamlErr.Details
	}
	return nil
}
