package async_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/okonu/portfolio-api/pkg/async"
)

// syncWriter lets the logger be read safely after background writes.
type syncWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

func (w *syncWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.String()
}

func TestFire(t *testing.T) {
	t.Parallel()

	t.Run("runs the task", func(t *testing.T) {
		t.Parallel()

		done := make(chan struct{})
		async.Fire(nil, time.Second, "noop", func(ctx context.Context) error {
			close(done)
			return nil
		})

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("task never ran")
		}
	})

	t.Run("logs task errors", func(t *testing.T) {
		t.Parallel()

		out := &syncWriter{}
		log := slog.New(slog.NewTextHandler(out, nil))

		done := make(chan struct{})
		async.Fire(log, time.Second, "confirmation-email", func(ctx context.Context) error {
			defer close(done)
			return errors.New("smtp down")
		})
		<-done

		assert.Eventually(t, func() bool {
			s := out.String()
			return bytes.Contains([]byte(s), []byte("background task failed")) &&
				bytes.Contains([]byte(s), []byte("confirmation-email"))
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("recovers panics", func(t *testing.T) {
		t.Parallel()

		out := &syncWriter{}
		log := slog.New(slog.NewTextHandler(out, nil))

		async.Fire(log, time.Second, "panicky", func(ctx context.Context) error {
			panic("boom")
		})

		assert.Eventually(t, func() bool {
			return bytes.Contains([]byte(out.String()), []byte("background task panicked"))
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("task context has a deadline", func(t *testing.T) {
		t.Parallel()

		deadlineSet := make(chan bool, 1)
		async.Fire(nil, 50*time.Millisecond, "deadline", func(ctx context.Context) error {
			_, ok := ctx.Deadline()
			deadlineSet <- ok
			return nil
		})

		select {
		case ok := <-deadlineSet:
			assert.True(t, ok)
		case <-time.After(time.Second):
			t.Fatal("task never ran")
		}
	})
}
