package ratelimiter

import (
	"net/http"
	"strconv"

	"github.com/okonu/portfolio-api/pkg/response"
)

// KeyFunc extracts the rate limit key from a request.
type KeyFunc func(r *http.Request) string

// Middleware enforces the limit per key ahead of the wrapped handler,
// exposing the bucket state through X-RateLimit-* headers. A store failure
// fails open: losing the limiter should not take the API down with it.
func Middleware(tb *TokenBucket, keyFunc KeyFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			result, err := tb.Allow(r.Context(), key)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed() {
				if retryAfter := int(result.RetryAfter().Seconds()); retryAfter > 0 {
					w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				}
				response.JSON(w, http.StatusTooManyRequests, response.ErrorBody{
					Error: "Too many requests from this IP, please try again later",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
