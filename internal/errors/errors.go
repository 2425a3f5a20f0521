package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid input, configuration, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, network, permissions, etc.).
	ExitSystem = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrUnknownPlatform indicates the platform key is not registered.
	ErrUnknownPlatform = errors.New("unknown platform")

	// ErrUnknownStyle indicates the generation style name is not recognized.
	ErrUnknownStyle = errors.New("unknown style")

	// ErrUnknownStrategy indicates a platform references a probe strategy
	// that is not registered. This is a programmer error in the platform table.
	ErrUnknownStrategy = errors.New("unknown probe strategy")

	// ErrInvalidTemplate indicates a platform URL template is malformed.
	ErrInvalidTemplate = errors.New("invalid URL template")

	// ErrUnsafeCandidate indicates a candidate contains characters that
	// cannot be safely embedded in a profile URL template.
	ErrUnsafeCandidate = errors.New("candidate not safe for URL template")

	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoHandleFound indicates the search exhausted its attempt budget
	// without finding an available handle.
	ErrNoHandleFound = errors.New("no available handle found")
)

// New creates an error with the given message.
// It delegates to cockroachdb/errors so stack traces are captured.
func New(msg string) error {
	return errors.New(msg)
}

// Newf creates a formatted error with a captured stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// Wrap annotates err with a message, preserving the error chain.
func Wrap(err error, msg string) error {
	return errors.Wrap(err, msg)
}

// Wrapf annotates err with a formatted message, preserving the error chain.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// ExitError wraps an error with an exit code and optional suggestion for CLI applications.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
// If err is nil, the returned ExitError will have a nil Err field.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// NewConfigError creates an ExitError with ExitUser code and a standard suggestion.
func NewConfigError(err error) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: "Run: handlescout init",
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}
