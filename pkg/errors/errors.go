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

	// Resolution errors
	ErrWorkingDir        ErrorCode = "WORKING_DIR"
	ErrInvalidSearchTerm ErrorCode = "INVALID_SEARCH_TERM"
	ErrNotFound          ErrorCode = "NOT_FOUND"
	ErrLocateFailed      ErrorCode = "LOCATE_FAILED"
	ErrAborted           ErrorCode = "ABORTED"
	ErrPromptUnavailable ErrorCode = "PROMPT_UNAVAILABLE"

	// Sink errors
	ErrClipboard ErrorCode = "CLIPBOARD"
	ErrKeystroke ErrorCode = "KEYSTROKE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// HereError represents a structured error with code and details
type HereError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *HereError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HereError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *HereError) Is(target error) bool {
	var targetErr *HereError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new HereError with the given code and message
func New(code ErrorCode, message string) *HereError {
	return &HereError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HereError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HereError {
	return &HereError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HereError
func Wrap(err error, code ErrorCode, message string) *HereError {
	if err == nil {
		return nil
	}
	return &HereError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HereError {
	if err == nil {
		return nil
	}
	return &HereError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *HereError) WithDetail(key string, value interface{}) *HereError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var hereErr *HereError
	if errors.As(err, &hereErr) {
		return hereErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a HereError
func GetErrorCode(err error) ErrorCode {
	var hereErr *HereError
	if errors.As(err, &hereErr) {
		return hereErr.Code
	}
	return ErrUnknown
}

// IsAbort reports whether err means the user walked away from the
// disambiguation prompt, either by cancelling it or because no prompt
// could be shown.
func IsAbort(err error) bool {
	code := GetErrorCode(err)
	return code == ErrAborted || code == ErrPromptUnavailable
}

// IsWarning reports whether err belongs to a sink that must not abort the
// invocation. Everything else returned from the pipeline is fatal.
func IsWarning(err error) bool {
	switch GetErrorCode(err) {
	case ErrClipboard, ErrKeystroke:
		return true
	}
	return false
}

// IsFatal reports whether err must end the invocation with a failure status
func IsFatal(err error) bool {
	return err != nil && !IsWarning(err)
}
