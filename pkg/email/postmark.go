package email

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mrz1836/postmark"
)

// Postmark API error code for a bad or missing server token.
const postmarkCodeBadToken = 10

type postmarkSender struct {
	client *postmark.Client
}

// NewPostmarkSender creates a Postmark-backed Sender. The server token is
// required; the account token is only needed for administrative endpoints
// and may be empty.
func NewPostmarkSender(cfg Config) (Sender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}
	return &postmarkSender{
		client: postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
	}, nil
}

// Send makes a single delivery attempt through Postmark's transactional API.
// Credential rejections surface as ErrAuthFailed so callers can distinguish
// misconfiguration from transient transport trouble.
func (s *postmarkSender) Send(ctx context.Context, msg Message) (Receipt, error) {
	if err := msg.Validate(); err != nil {
		return Receipt{}, err
	}

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:       msg.From,
		To:         msg.To,
		ReplyTo:    msg.ReplyTo,
		Subject:    msg.Subject,
		HTMLBody:   msg.HTML,
		TextBody:   msg.Text,
		Tag:        msg.Tag,
		TrackOpens: true,
	})
	if err != nil {
		if isAuthError(err) {
			return Receipt{}, errors.Join(ErrAuthFailed, err)
		}
		return Receipt{}, errors.Join(ErrSendFailed, err)
	}
	if resp.ErrorCode > 0 {
		apiErr := fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message)
		if resp.ErrorCode == postmarkCodeBadToken {
			return Receipt{}, errors.Join(ErrAuthFailed, apiErr)
		}
		return Receipt{}, errors.Join(ErrSendFailed, apiErr)
	}

	return Receipt{MessageID: resp.MessageID, Timestamp: time.Now().UTC()}, nil
}

// isAuthError recognizes HTTP-level credential rejections that never reach
// the API error-code path.
func isAuthError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "401") || strings.Contains(msg, "Unauthorized")
}
