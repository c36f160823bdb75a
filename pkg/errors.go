package semverbump

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorCode classifies why a bump failed.
type ErrorCode string

const (
	// ErrCodeParse means the input is not a syntactically valid semantic version.
	ErrCodeParse ErrorCode = "PARSE_ERROR"
	// ErrCodeInvalidIdentifier means a replacement or derived identifier violates the grammar.
	ErrCodeInvalidIdentifier ErrorCode = "INVALID_IDENTIFIER"
	// ErrCodeMissingIdentifier means a prerelease or build bump had nothing to bump.
	ErrCodeMissingIdentifier ErrorCode = "MISSING_IDENTIFIER"
)

// Error is returned by every failing operation in this package. The message is
// meant to be shown to the user as-is.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode reports whether err, or any error it wraps, is an *Error with the given code.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

func newError(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func parseErrorf(format string, args ...any) *Error {
	return newError(ErrCodeParse, format, args...)
}
