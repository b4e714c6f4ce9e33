package response

import "errors"

// Error is a service-level error that carries the HTTP status code to use
// when it reaches the boundary. Message is safe to return to the caller
// verbatim; the wrapped cause is surfaced only in development mode.
type Error struct {
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// NewError creates an Error with the given status and caller-safe message.
func NewError(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// WrapError is NewError with an underlying cause attached for development
// diagnostics and errors.Is checks.
func WrapError(status int, message string, cause error) *Error {
	return &Error{Status: status, Message: message, cause: cause}
}

// BadRequest creates a 400 validation error.
func BadRequest(message string) *Error {
	return NewError(400, message)
}

// AsError reports whether err is (or wraps) a *Error, storing it in target.
func AsError(err error, target **Error) bool {
	return errors.As(err, target)
}
