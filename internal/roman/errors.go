package roman

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes conversion errors.
type ErrorCode string

const (
	// ErrCodeInvalidArgument indicates numeric input outside an operation's valid domain.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// ErrCodeInvalidFormat indicates malformed numeral text.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// Error is returned by every conversion that fails.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message describes the violated constraint.
	Message string

	// Input is the offending numeral text, empty for numeric input.
	Input string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("%s: %s (input=%q)", e.Code, e.Message, e.Input)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInvalidArgument returns true if err is an out-of-domain numeric error.
// Uses errors.As to handle wrapped errors.
func IsInvalidArgument(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == ErrCodeInvalidArgument
}

// IsInvalidFormat returns true if err is a malformed numeral error.
// Uses errors.As to handle wrapped errors.
func IsInvalidFormat(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == ErrCodeInvalidFormat
}

// CodeOf extracts the error code from a (possibly wrapped) *Error.
func CodeOf(err error) (ErrorCode, bool) {
	var re *Error
	if errors.As(err, &re) {
		return re.Code, true
	}
	return "", false
}

func argumentError(format string, args ...any) *Error {
	return &Error{
		Code:    ErrCodeInvalidArgument,
		Message: fmt.Sprintf(format, args...),
	}
}

func formatError(input, format string, args ...any) *Error {
	return &Error{
		Code:    ErrCodeInvalidFormat,
		Message: fmt.Sprintf(format, args...),
		Input:   input,
	}
}
