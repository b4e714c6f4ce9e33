// Package async runs fire-and-forget background tasks with panic recovery.
// Failures go to the observability sink (the logger), never to the caller.
package async
