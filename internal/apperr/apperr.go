// Package apperr defines the request-facing error taxonomy. Services convert
// store and provider failures into these errors; the HTTP layer renders them
// as a single {message} body with the matching status code.
package apperr

import "net/http"

// Error is an error with a client-facing message and HTTP status code.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewValidation reports malformed input. Raised before any side effect.
func NewValidation(message string) *Error {
	return &Error{Status: http.StatusUnprocessableEntity, Message: message}
}

// NewConflict reports a uniqueness violation, e.g. a duplicate email.
func NewConflict(message string) *Error {
	return &Error{Status: http.StatusUnprocessableEntity, Message: message}
}

// NewAuthentication reports a failure to establish who the caller is:
// missing, malformed or expired token, or bad login credentials.
func NewAuthentication(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

// NewAuthorization reports that an authenticated caller is not permitted
// to perform the operation (not the owner of the resource).
func NewAuthorization(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// NewNotFound reports a missing resource.
func NewNotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// NewUpstream reports a failure of an external provider.
func NewUpstream(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message}
}

// NewInternal reports a store or transaction failure.
func NewInternal(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message}
}
