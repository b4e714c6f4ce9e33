package waitlist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/okonu/portfolio-api/pkg/async"
	"github.com/okonu/portfolio-api/pkg/email"
	"github.com/okonu/portfolio-api/pkg/localtime"
	"github.com/okonu/portfolio-api/pkg/logger"
	"github.com/okonu/portfolio-api/pkg/response"
	"github.com/okonu/portfolio-api/pkg/validator"
)

// Deadline for the background confirmation email, independent of the
// originating request.
const confirmationTimeout = 30 * time.Second

// Signup is a waitlist join request after HTTP binding. Everything except
// Email is optional attribution data.
type Signup struct {
	Email       string
	IPAddress   string
	UTMSource   string
	UTMMedium   string
	UTMCampaign string
}

// Service manages waitlist signups and their confirmation emails.
type Service struct {
	repo   Repository
	sender email.Sender
	cfg    Config
	log    *slog.Logger
	now    func() time.Time

	// dispatch runs the confirmation send. The default detaches it from the
	// request via async.Fire; tests swap in a synchronous version.
	dispatch func(task string, fn func(context.Context) error)
}

// NewService creates the waitlist service.
func NewService(repo Repository, sender email.Sender, cfg Config, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Service{repo: repo, sender: sender, cfg: cfg, log: log, now: time.Now}
	s.dispatch = func(task string, fn func(context.Context) error) {
		async.Fire(s.log, confirmationTimeout, task, fn)
	}
	return s
}

// Join validates and stores a signup, then fires the confirmation email in
// the background. A signup for an email that is already on the list succeeds
// without writing or re-sending mail; the caller can tell the two outcomes
// apart via Result.AlreadyExists.
func (s *Service) Join(ctx context.Context, signup Signup) (response.Result, error) {
	addr, err := normalizeEmail(signup.Email)
	if err != nil {
		return response.Result{}, err
	}

	existing, err := s.repo.FindByEmail(ctx, addr)
	if err != nil {
		return response.Result{}, response.WrapError(http.StatusInternalServerError,
			"Failed to join waitlist", err)
	}
	if existing != nil {
		s.log.InfoContext(ctx, "email already on waitlist", logger.Email(addr))
		return s.alreadyExistsResult(), nil
	}

	rec := Record{
		Email:       addr,
		Status:      StatusActive,
		JoinedAt:    s.now().UTC(),
		IPAddress:   signup.IPAddress,
		UTMSource:   signup.UTMSource,
		UTMMedium:   signup.UTMMedium,
		UTMCampaign: signup.UTMCampaign,
	}

	err = s.repo.Insert(ctx, rec)
	if errors.Is(err, ErrDuplicateEmail) {
		// Lost a race with a concurrent signup for the same address. The
		// unique index kept the data consistent; report the same friendly
		// outcome the pre-check would have.
		s.log.InfoContext(ctx, "email already on waitlist", logger.Email(addr))
		return s.alreadyExistsResult(), nil
	}
	if err != nil {
		return response.Result{}, response.WrapError(http.StatusInternalServerError,
			"Failed to join waitlist", err)
	}

	s.log.InfoContext(ctx, "new waitlist signup", logger.Email(addr))

	s.dispatch("waitlist-confirmation", func(ctx context.Context) error {
		return s.sendConfirmation(ctx, addr)
	})

	return response.Result{
		Success:   true,
		Message:   "Successfully added to waitlist",
		Timestamp: localtime.Format(s.now()),
	}, nil
}

// Health reports whether the waitlist storage backend is reachable.
func (s *Service) Health(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func (s *Service) alreadyExistsResult() response.Result {
	return response.Result{
		Success:       true,
		Message:       "You are already on our waitlist!",
		AlreadyExists: true,
		Timestamp:     localtime.Format(s.now()),
	}
}

func (s *Service) sendConfirmation(ctx context.Context, addr string) error {
	note := renderWelcome(s.cfg, s.now())

	_, err := s.sender.Send(ctx, email.Message{
		From:    fmt.Sprintf("%s Team <%s>", s.cfg.AppName, s.cfg.SenderEmail),
		To:      addr,
		Subject: note.Subject,
		HTML:    note.HTML,
		Text:    note.Text,
		Tag:     "waitlist-confirmation",
	})
	if err != nil {
		return err
	}

	s.log.Info("waitlist confirmation email sent", logger.Email(addr))
	return nil
}

// normalizeEmail validates the address and returns it trimmed and lowercased,
// so lookups and the unique index see one canonical form.
func normalizeEmail(raw string) (string, error) {
	if raw == "" {
		return "", response.BadRequest("Email is required")
	}
	if !validator.IsEmail(raw) {
		return "", response.BadRequest("Invalid email format")
	}
	return strings.ToLower(strings.TrimSpace(raw)), nil
}
