// Package common defines shared sentinel errors and error types used across
// the pubcrawl packages. Callers should use errors.Is / errors.As to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// ErrCorruptedSnapshot is returned by a snapshot repository when the
	// stored blob could not be decoded. The blob is discarded before the
	// error is returned, so a retry sees a clean store.
	ErrCorruptedSnapshot = errors.New("corrupted snapshot discarded")

	// Auth errors. ErrInvalidCredentials deliberately carries the same
	// generic message for an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("email or password is incorrect")

	// ErrNoSession is returned by operations that require a logged-in user.
	ErrNoSession = errors.New("not logged in")
)

// ValidationError reports the first violated input rule. The reason is a
// user-facing message and is safe to display as-is.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError returns a ValidationError with the given reason.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
