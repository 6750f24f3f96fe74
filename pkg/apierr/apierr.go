// Package apierr defines the tagged error type exchanged between handlers
// and the HTTP response layer. An Error carries the status code of the
// response it should become and a flag marking the message safe to show to
// an end user; anything else is reported to clients as the bare status text.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an error tagged with an HTTP status code.
type Error struct {
	// Status is the HTTP status code the error translates to.
	Status int
	// Message describes the failure.
	Message string
	// Expose marks the message safe to return to the client.
	Expose bool
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// New creates a tagged error whose message is safe to expose to the client.
func New(status int, message string) *Error {
	return &Error{
		Status:  status,
		Message: message,
		Expose:  true,
	}
}

// Newf creates a tagged error with a formatted client-safe message.
func Newf(status int, format string, args ...interface{}) *Error {
	return New(status, fmt.Sprintf(format, args...))
}

// StatusOf returns the HTTP status code for an error. Errors without a tag
// anywhere in their chain map to 500 Internal Server Error.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}

// IsExposed reports whether the error's message may be shown to the client.
func IsExposed(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Expose
}

// PublicMessage returns the message to send to the client: the error's own
// message when it is exposed, otherwise the generic text for its status.
func PublicMessage(err error) string {
	if IsExposed(err) {
		var apiErr *Error
		errors.As(err, &apiErr)
		return apiErr.Message
	}
	return http.StatusText(StatusOf(err))
}
