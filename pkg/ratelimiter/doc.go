// Package ratelimiter implements a token bucket rate limiter with pluggable
// storage: in-memory for single instances, Redis for shared limits across
// replicas. The HTTP middleware keys buckets by whatever KeyFunc extracts,
// typically the client IP.
package ratelimiter
