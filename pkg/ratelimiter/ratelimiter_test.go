package ratelimiter_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okonu/portfolio-api/pkg/ratelimiter"
)

func newLimiter(t *testing.T, cfg ratelimiter.Config) *ratelimiter.TokenBucket {
	t.Helper()

	store := ratelimiter.NewMemoryStore()
	t.Cleanup(store.Close)

	tb, err := ratelimiter.New(store, cfg)
	require.NoError(t, err)
	return tb
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("rejects invalid config", func(t *testing.T) {
		t.Parallel()

		store := ratelimiter.NewMemoryStore()
		defer store.Close()

		_, err := ratelimiter.New(store, ratelimiter.Config{})
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
	})
}

func TestTokenBucket_Allow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("allows up to capacity then denies", func(t *testing.T) {
		t.Parallel()

		tb := newLimiter(t, ratelimiter.Config{Capacity: 3, RefillRate: 3, RefillInterval: time.Hour})

		for i := range 3 {
			result, err := tb.Allow(ctx, "1.2.3.4")
			require.NoError(t, err)
			assert.True(t, result.Allowed(), "request %d should pass", i)
		}

		result, err := tb.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.False(t, result.Allowed())
		assert.Positive(t, result.RetryAfter())
	})

	t.Run("keys are independent", func(t *testing.T) {
		t.Parallel()

		tb := newLimiter(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Hour})

		first, err := tb.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, first.Allowed())

		second, err := tb.Allow(ctx, "10.0.0.2")
		require.NoError(t, err)
		assert.True(t, second.Allowed())
	})

	t.Run("refills after the interval", func(t *testing.T) {
		t.Parallel()

		tb := newLimiter(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: 20 * time.Millisecond})

		first, err := tb.Allow(ctx, "key")
		require.NoError(t, err)
		assert.True(t, first.Allowed())

		denied, err := tb.Allow(ctx, "key")
		require.NoError(t, err)
		assert.False(t, denied.Allowed())

		// Two intervals: one pays off the over-consumed token, one refills.
		time.Sleep(50 * time.Millisecond)

		refilled, err := tb.Allow(ctx, "key")
		require.NoError(t, err)
		assert.True(t, refilled.Allowed())
	})

	t.Run("reset restores the bucket", func(t *testing.T) {
		t.Parallel()

		tb := newLimiter(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Hour})

		_, err := tb.Allow(ctx, "key")
		require.NoError(t, err)

		require.NoError(t, tb.Reset(ctx, "key"))

		result, err := tb.Allow(ctx, "key")
		require.NoError(t, err)
		assert.True(t, result.Allowed())
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	byIP := func(r *http.Request) string { return r.RemoteAddr }
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("passes and sets headers", func(t *testing.T) {
		t.Parallel()

		tb := newLimiter(t, ratelimiter.Config{Capacity: 2, RefillRate: 2, RefillInterval: time.Hour})
		handler := ratelimiter.Middleware(tb, byIP)(next)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))
	})

	t.Run("denies with 429 json body", func(t *testing.T) {
		t.Parallel()

		tb := newLimiter(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Hour})
		handler := ratelimiter.Middleware(tb, byIP)(next)

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("Retry-After"))

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Contains(t, body["error"], "Too many requests")
	})

	t.Run("empty key bypasses the limiter", func(t *testing.T) {
		t.Parallel()

		tb := newLimiter(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Hour})
		handler := ratelimiter.Middleware(tb, func(*http.Request) string { return "" })(next)

		for range 5 {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})
}
