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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Structural errors. Any of these aborts the run.
	ErrUnterminatedBlock ErrorCode = "UNTERMINATED_BLOCK"
	ErrDuplicateTruth    ErrorCode = "DUPLICATE_TRUTH"
	ErrUnknownReference  ErrorCode = "UNKNOWN_REFERENCE"
	ErrNestedInRef       ErrorCode = "NESTED_IN_REF"
	ErrNestedInTruth     ErrorCode = "NESTED_IN_TRUTH"

	// Reconciliation errors
	ErrConflict ErrorCode = "CONFLICT"

	// FileSystem errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"

	// Process boundary errors
	ErrLock ErrorCode = "LOCK"
)

// Location identifies a 1-based line within a file
type Location struct {
	File string
	Line int
}

// String renders the location as path:line
func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// BlocksyncError represents a structured error with code and details
type BlocksyncError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BlocksyncError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BlocksyncError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BlocksyncError) Is(target error) bool {
	var targetErr *BlocksyncError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BlocksyncError with the given code and message
func New(code ErrorCode, message string) *BlocksyncError {
	return &BlocksyncError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BlocksyncError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BlocksyncError {
	return &BlocksyncError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// At creates an error whose message is prefixed with a file location.
// The location is also kept under the "location" detail.
func At(loc Location, code ErrorCode, format string, args ...interface{}) *BlocksyncError {
	err := Newf(code, "%s: %s", loc, fmt.Sprintf(format, args...))
	return err.WithDetail("location", loc)
}

// Wrap wraps an existing error with a BlocksyncError
func Wrap(err error, code ErrorCode, message string) *BlocksyncError {
	if err == nil {
		return nil
	}
	return &BlocksyncError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BlocksyncError {
	if err == nil {
		return nil
	}
	return &BlocksyncError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BlocksyncError) WithDetail(key string, value interface{}) *BlocksyncError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var bsErr *BlocksyncError
	if errors.As(err, &bsErr) {
		return bsErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BlocksyncError
func GetErrorCode(err error) ErrorCode {
	var bsErr *BlocksyncError
	if errors.As(err, &bsErr) {
		return bsErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a BlocksyncError
func GetErrorDetails(err error) map[string]interface{} {
	var bsErr *BlocksyncError
	if errors.As(err, &bsErr) {
		return bsErr.Details
	}
	return nil
}

// IsStructural reports whether err is one of the fatal structural errors
func IsStructural(err error) bool {
	switch GetErrorCode(err) {
	case ErrUnterminatedBlock, ErrDuplicateTruth, ErrUnknownReference, ErrNestedInRef, ErrNestedInTruth:
		return true
	}
	return false
}
