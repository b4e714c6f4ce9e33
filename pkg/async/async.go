package async

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Fire runs fn in the background, detached from the caller's request
// lifecycle. It is meant for best-effort side effects (a confirmation email
// after a committed write) whose failure must never reach the caller: errors
// and panics are routed to the logger and dropped.
//
// The task gets its own context with the given timeout so an abandoned
// request cannot cancel work that should still finish.
func Fire(log *slog.Logger, timeout time.Duration, task string, fn func(context.Context) error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		defer func() {
			if r := recover(); r != nil {
				log.Error("background task panicked",
					slog.String("task", task),
					slog.Any("panic", r),
				)
			}
		}()

		if err := fn(ctx); err != nil {
			log.Error("background task failed",
				slog.String("task", task),
				slog.Any("error", fmt.Errorf("%s: %w", task, err)),
			)
		}
	}()
}
