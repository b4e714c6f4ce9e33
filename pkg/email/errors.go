package email

import "errors"

var (
	// ErrInvalidConfig indicates the sender cannot be constructed.
	ErrInvalidConfig = errors.New("email: invalid config")

	// ErrInvalidMessage indicates message validation failed before sending.
	ErrInvalidMessage = errors.New("email: invalid message")

	// ErrAuthFailed indicates the transport rejected our credentials.
	ErrAuthFailed = errors.New("email: authentication failed")

	// ErrSendFailed indicates any other delivery failure.
	ErrSendFailed = errors.New("email: failed to send")
)
