package email

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/okonu/portfolio-api/pkg/validator"
)

// Sender delivers a single outbound email. Implementations make exactly one
// delivery attempt; transient failures propagate to the caller.
type Sender interface {
	Send(ctx context.Context, msg Message) (Receipt, error)
}

// Message is a fully-formed outbound email.
type Message struct {
	From    string // sender address, display-name form allowed
	To      string // recipient address
	ReplyTo string // optional
	Subject string
	HTML    string
	Text    string // optional plain-text alternative
	Tag     string // optional, for delivery analytics
}

// Receipt identifies an accepted delivery.
type Receipt struct {
	MessageID string
	Timestamp time.Time
}

// Validate checks the message before any delivery attempt is made.
func (m Message) Validate() error {
	if strings.TrimSpace(m.From) == "" {
		return fmt.Errorf("%w: From is required", ErrInvalidMessage)
	}
	if _, err := mail.ParseAddress(m.From); err != nil {
		return fmt.Errorf("%w: From must be a valid email address", ErrInvalidMessage)
	}
	if !validator.IsEmail(m.To) {
		return fmt.Errorf("%w: To must be a valid email address", ErrInvalidMessage)
	}
	if m.ReplyTo != "" && !validator.IsEmail(m.ReplyTo) {
		return fmt.Errorf("%w: ReplyTo must be a valid email address", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.HTML) == "" {
		return fmt.Errorf("%w: HTML body is required", ErrInvalidMessage)
	}
	return nil
}
