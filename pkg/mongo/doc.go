// Package mongo wraps MongoDB connection setup: env-backed configuration,
// connect-with-retry, and a readiness probe. Collections are handed to
// repositories by the bootstrap code; nothing here knows about the domain.
package mongo
