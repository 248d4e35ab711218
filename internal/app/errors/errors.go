package errors

import (
	"fmt"
)

// Common error types
var (
	// Configuration errors
	ErrMissingCredentials = New("catalog credentials are required")
	ErrInvalidCredentials = New("invalid catalog credentials")
	ErrInvalidConfig      = New("invalid configuration")

	// Catalog errors
	ErrTrackNotFound      = New("track not found")
	ErrCatalogUnavailable = New("catalog unavailable")

	// Database errors
	ErrDatabaseConnection = New("database connection failed")
	ErrQueryFailed        = New("query failed")
	ErrScanFailed         = New("scan failed")
	ErrInsertFailed       = New("insert failed")
	ErrUpdateFailed       = New("update failed")

	// File errors
	ErrFileWriteFailed = New("file write failed")

	// Network errors
	ErrRequestFailed   = New("request failed")
	ErrResponseInvalid = New("invalid response")
)

// Error represents a standardized error
type Error struct {
	message string
	cause   error
}

// New creates a new error
func New(message string) *Error {
	return &Error{message: message}
}

// Newf creates a new formatted error
func Newf(format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message && t.cause == nil
}

// TrackNotFound returns an ErrTrackNotFound carrying the missing id
func TrackNotFound(id string) error {
	return Wrapf(ErrTrackNotFound, "track %q", id)
}

// Unavailable marks err as a catalog availability failure
func Unavailable(err error, operation string) error {
	return WrapAs(err, ErrCatalogUnavailable, "%s", operation)
}

// WrapAs wraps err so that it matches both kind and its original cause
func WrapAs(err error, kind *Error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: fmt.Sprintf(format, args...),
		cause:   &joined{primary: kind, secondary: err},
	}
}

// joined lets a wrapped error match both the availability sentinel and its original cause
type joined struct {
	primary   error
	secondary error
}

func (j *joined) Error() string {
	return fmt.Sprintf("%v: %v", j.primary, j.secondary)
}

func (j *joined) Unwrap() []error {
	return []error{j.primary, j.secondary}
}

// RequiredField returns an error for missing required fields
func RequiredField(field string) error {
	return Newf("%s is required", field)
}
