// Package errs defines the application error taxonomy.
//
// Every error that should reach the client with a specific status is an
// *Error. Anything else is treated as a storage failure and reported as 500
// with the underlying message attached for diagnostics.
package errs

import (
	"errors"
	"net/http"
)

type Error struct {
	Status  int
	Message string

	// SalesCount is set when a delete is blocked by referencing sales.
	SalesCount *int

	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError reports malformed, missing or out-of-range input.
func NewValidationError(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// NewNotFoundError reports a missing entity or a missing referenced entity.
func NewNotFoundError(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// NewConflictError reports a uniqueness violation.
func NewConflictError(message string, err error) *Error {
	return &Error{Status: http.StatusConflict, Message: message, Err: err}
}

// NewBlockedDeleteError reports a delete refused because count sales still
// reference the row.
func NewBlockedDeleteError(message string, count int) *Error {
	return &Error{Status: http.StatusConflict, Message: message, SalesCount: &count}
}

// As returns the *Error in err's chain, if any.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Status maps err to its HTTP status. Unclassified errors are 500.
func Status(err error) int {
	if e, ok := As(err); ok {
		return e.Status
	}
	return http.StatusInternalServerError
}
