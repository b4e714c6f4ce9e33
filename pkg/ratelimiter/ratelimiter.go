package ratelimiter

import (
	"context"
	"time"
)

// Config defines the token bucket parameters. The service default of 100
// tokens refilled every 15 minutes mirrors the boundary limit the frontend
// was built against.
type Config struct {
	Capacity       int           `env:"RATELIMIT_CAPACITY" envDefault:"100"`
	RefillRate     int           `env:"RATELIMIT_REFILL_RATE" envDefault:"100"`
	RefillInterval time.Duration `env:"RATELIMIT_REFILL_INTERVAL" envDefault:"15m"`
}

func (c Config) validate() error {
	if c.Capacity <= 0 || c.RefillRate <= 0 || c.RefillInterval <= 0 {
		return ErrInvalidConfig
	}
	return nil
}

// Result describes the bucket state after a check.
type Result struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Allowed reports whether the request may proceed.
func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long to wait before retrying; zero when allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return time.Until(r.ResetAt)
}

// Store persists bucket state. Implementations must be safe for concurrent
// use across requests.
type Store interface {
	// ConsumeTokens takes n tokens from the bucket for key, refilling first
	// according to config. A negative remaining count means the request must
	// be denied.
	ConsumeTokens(ctx context.Context, key string, n int, cfg Config) (remaining int, resetAt time.Time, err error)

	// Reset clears the bucket state for key.
	Reset(ctx context.Context, key string) error
}

// TokenBucket is a rate limiter over a pluggable store.
type TokenBucket struct {
	store Store
	cfg   Config
}

// New creates a TokenBucket limiter.
func New(store Store, cfg Config) (*TokenBucket, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &TokenBucket{store: store, cfg: cfg}, nil
}

// Allow consumes one token for key.
func (tb *TokenBucket) Allow(ctx context.Context, key string) (*Result, error) {
	remaining, resetAt, err := tb.store.ConsumeTokens(ctx, key, 1, tb.cfg)
	if err != nil {
		return nil, err
	}
	return &Result{Limit: tb.cfg.Capacity, Remaining: remaining, ResetAt: resetAt}, nil
}

// Reset clears the bucket for key.
func (tb *TokenBucket) Reset(ctx context.Context, key string) error {
	return tb.store.Reset(ctx, key)
}
