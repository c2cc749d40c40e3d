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
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Catalog errors
	ErrCatalogLoad    ErrorCode = "CATALOG_LOAD"
	ErrCatalogInvalid ErrorCode = "CATALOG_INVALID"
	ErrDuplicateItem  ErrorCode = "DUPLICATE_ITEM"
	ErrUnknownTag     ErrorCode = "UNKNOWN_TAG"

	// Wizard errors
	ErrStepBlocked ErrorCode = "STEP_BLOCKED"

	// Rendering and export errors
	ErrRender        ErrorCode = "RENDER"
	ErrPDFRender     ErrorCode = "PDF_RENDER"
	ErrUnknownFormat ErrorCode = "UNKNOWN_FORMAT"
	ErrFileWrite     ErrorCode = "FILE_WRITE"
)

// PacklistError represents a structured error with code and details
type PacklistError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PacklistError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PacklistError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PacklistError) Is(target error) bool {
	var targetErr *PacklistError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PacklistError with the given code and message
func New(code ErrorCode, message string) *PacklistError {
	return &PacklistError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PacklistError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PacklistError {
	return &PacklistError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PacklistError
func Wrap(err error, code ErrorCode, message string) *PacklistError {
	if err == nil {
		return nil
	}
	return &PacklistError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PacklistError {
	if err == nil {
		return nil
	}
	return &PacklistError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PacklistError) WithDetail(key string, value interface{}) *PacklistError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var plErr *PacklistError
	if errors.As(err, &plErr) {
		return plErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PacklistError
func GetErrorCode(err error) ErrorCode {
	var plErr *PacklistError
	if errors.As(err, &plErr) {
		return plErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PacklistError
func GetErrorDetails(err error) map[string]interface{} {
	var plErr *PacklistError
	if errors.As(err, &plErr) {
		return plErr.Details
	}
	return nil
}
