// Package errors provides the typed errors shared by the calculator, the CLI and the API.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInput is a malformed request or flag value
	TypeInput Type = "INPUT_ERROR"

	// TypeInvalidCategory is a key that is not part of the reference data
	TypeInvalidCategory Type = "INVALID_CATEGORY"

	// TypeParsing is a job file that does not parse
	TypeParsing Type = "PARSING_ERROR"

	// TypeConfig is a bad config file or environment override
	TypeConfig Type = "CONFIG_ERROR"

	// TypeNotFound is a missing file or route
	TypeNotFound Type = "NOT_FOUND"

	// TypeInternal is everything else
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error is a typed error with optional cause and context
type Error struct {
	Type    Type           `json:"type"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Context map[string]any `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches an *Error target by type, and by message when the target has one
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Type == e.Type && (t.Message == "" || t.Message == e.Message)
}

// WithContext attaches a key/value pair and returns e
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// New creates an error of errType
func New(errType Type, message string) *Error {
	return &Error{Type: errType, Message: message}
}

// Newf creates an error of errType with a formatted message
func Newf(errType Type, format string, args ...any) *Error {
	return New(errType, fmt.Sprintf(format, args...))
}

// Wrap attaches errType and message to cause
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{Type: errType, Message: message, Cause: cause}
}

// Wrapf is Wrap with a formatted message
func Wrapf(errType Type, cause error, format string, args ...any) *Error {
	return Wrap(errType, fmt.Sprintf(format, args...), cause)
}

// TypeOf returns the type of the first *Error in err's chain,
// or TypeInternal when there is none.
func TypeOf(err error) Type {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type
	}
	return TypeInternal
}

// IsType reports whether any *Error in the chain has type t
func IsType(err error, t Type) bool {
	var e *Error
	for err != nil {
		if !stderrors.As(err, &e) {
			return false
		}
		if e.Type == t {
			return true
		}
		err = e.Cause
	}
	return false
}

// Message returns the text of err without the [TYPE] tags, for callers
// that report the type on its own.
func Message(err error) string {
	e, ok := err.(*Error)
	if !ok {
		return err.Error()
	}
	if e.Cause != nil {
		return e.Message + ": " + Message(e.Cause)
	}
	return e.Message
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// InvalidCategory reports a value that is not a known key of kind
func InvalidCategory(kind, value string) *Error {
	return Newf(TypeInvalidCategory, "unknown %s %q", kind, value).
		WithContext("kind", kind).
		WithContext("value", value)
}

// Parsing creates a parsing error
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
