// Package errors defines bannerkit's coded errors. Every failure a caller
// may act on carries an ErrorCode, so tests and hosts match on the code
// rather than on message text.
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// ErrorCode identifies a class of failure
type ErrorCode string

const (
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// ErrContract marks a caller that broke an installer's calling protocol,
	// e.g. building a plan for an archive the matching test never accepted.
	ErrContract ErrorCode = "CONTRACT"

	// ErrDataInvalid is raised when archive content cannot be interpreted,
	// such as a SubModule.xml that is not well-formed or lacks its Id.
	ErrDataInvalid ErrorCode = "DATA_INVALID"

	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrWatch      ErrorCode = "WATCH"
)

// Error is a coded error with optional details and cause
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func build(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: map[string]interface{}{},
		Wrapped: cause,
	}
}

// Error formats as "[CODE] message" with ": cause" appended when wrapped.
func (e *Error) Error() string {
	if e.Wrapped == nil {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
}

// Unwrap returns the cause
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is matches any *Error with the same code
func (e *Error) Is(target error) bool {
	var other *Error
	return errors.As(target, &other) && other.Code == e.Code
}

// New creates an Error
func New(code ErrorCode, message string) *Error {
	return build(code, message, nil)
}

// Newf creates an Error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return build(code, fmt.Sprintf(format, args...), nil)
}

// Wrap attaches a code and message to err. A nil err gives nil.
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return build(code, message, err)
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return build(code, fmt.Sprintf(format, args...), err)
}

// WithDetail sets a detail and returns e for chaining
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = map[string]interface{}{}
	}
	e.Details[key] = value
	return e
}

// DetailKeys returns the detail keys in sorted order
func (e *Error) DetailKeys() []string {
	keys := make([]string, 0, len(e.Details))
	for k := range e.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsErrorCode reports whether any error in err's chain has code
func IsErrorCode(err error, code ErrorCode) bool {
	return err != nil && errors.Is(err, &Error{Code: code})
}

// GetErrorCode returns the code of the outermost Error in err's chain, or
// ErrUnknown.
func GetErrorCode(err error) ErrorCode {
	if kitErr, ok := As(err); ok {
		return kitErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details of the outermost Error in err's
// chain, or nil.
func GetErrorDetails(err error) map[string]interface{} {
	if kitErr, ok := As(err); ok {
		return kitErr.Details
	}
	return nil
}

// As returns the outermost Error in err's chain
func As(err error) (*Error, bool) {
	var kitErr *Error
	if errors.As(err, &kitErr) {
		return kitErr, true
	}
	return nil, false
}
