package contact

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/okonu/portfolio-api/pkg/email"
	"github.com/okonu/portfolio-api/pkg/localtime"
	"github.com/okonu/portfolio-api/pkg/logger"
	"github.com/okonu/portfolio-api/pkg/response"
	"github.com/okonu/portfolio-api/pkg/validator"
)

// Request is a contact-form submission. Nothing here is ever persisted; the
// data lives only for the duration of the mail attempt.
type Request struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Service delivers contact-form messages to the configured recipient.
type Service struct {
	sender email.Sender
	cfg    Config
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates the contact service.
func NewService(sender email.Sender, cfg Config, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{sender: sender, cfg: cfg, log: log, now: time.Now}
}

// Submit validates the request, renders the notification email, and makes a
// single delivery attempt. Validation failures return 400 errors with
// caller-safe messages; delivery failures return 500s distinguishing bad
// credentials from transport trouble.
func (s *Service) Submit(ctx context.Context, req Request) (response.Result, error) {
	validated, err := validate(req)
	if err != nil {
		return response.Result{}, err
	}

	note := renderNotification(validated, s.now())

	_, err = s.sender.Send(ctx, email.Message{
		From:    s.cfg.SenderEmail,
		To:      s.cfg.RecipientEmail,
		ReplyTo: validated.Email,
		Subject: note.Subject,
		HTML:    note.HTML,
		Text:    note.Text,
		Tag:     "contact-form",
	})
	if err != nil {
		s.log.ErrorContext(ctx, "contact email delivery failed", logger.Error(err))
		if errors.Is(err, email.ErrAuthFailed) {
			return response.Result{}, response.WrapError(http.StatusInternalServerError,
				"Authentication failed. Please check email credentials.", err)
		}
		return response.Result{}, response.WrapError(http.StatusInternalServerError,
			"Failed to send email", err)
	}

	s.log.InfoContext(ctx, "contact email sent", logger.Email(validated.Email))

	return response.Result{
		Success:   true,
		Message:   "Email sent successfully",
		Timestamp: localtime.Format(s.now()),
	}, nil
}

// validate applies the contact-form rules and returns the trimmed request.
// Messages match the public API contract word for word.
func validate(req Request) (Request, error) {
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return Request{}, response.BadRequest("All fields are required")
	}
	if !validator.IsEmail(req.Email) {
		return Request{}, response.BadRequest("Invalid email format")
	}

	trimmed := Request{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Message: strings.TrimSpace(req.Message),
	}
	if trimmed.Name == "" || trimmed.Message == "" {
		return Request{}, response.BadRequest("Name and message cannot be empty")
	}
	return trimmed, nil
}
