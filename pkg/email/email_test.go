package email_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okonu/portfolio-api/pkg/email"
)

func validMessage() email.Message {
	return email.Message{
		From:    "Okonu <noreply@example.com>",
		To:      "user@example.com",
		ReplyTo: "visitor@example.com",
		Subject: "Test Subject",
		HTML:    "<p>hello</p>",
		Text:    "hello",
		Tag:     "test",
	}
}

func TestMessageValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid message", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validMessage().Validate())
	})

	t.Run("display name From accepted", func(t *testing.T) {
		t.Parallel()
		msg := validMessage()
		msg.From = "Team <team@example.com>"
		assert.NoError(t, msg.Validate())
	})

	tests := []struct {
		name   string
		mutate func(*email.Message)
		errMsg string
	}{
		{"missing From", func(m *email.Message) { m.From = "" }, "From is required"},
		{"invalid From", func(m *email.Message) { m.From = "not-an-address" }, "From must be a valid"},
		{"missing To", func(m *email.Message) { m.To = "" }, "To must be a valid"},
		{"invalid To", func(m *email.Message) { m.To = "user@nodot" }, "To must be a valid"},
		{"invalid ReplyTo", func(m *email.Message) { m.ReplyTo = "bad reply" }, "ReplyTo must be a valid"},
		{"missing Subject", func(m *email.Message) { m.Subject = "  " }, "Subject is required"},
		{"missing HTML", func(m *email.Message) { m.HTML = "" }, "HTML body is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			msg := validMessage()
			tt.mutate(&msg)

			err := msg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, email.ErrInvalidMessage)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	t.Run("empty ReplyTo allowed", func(t *testing.T) {
		t.Parallel()
		msg := validMessage()
		msg.ReplyTo = ""
		assert.NoError(t, msg.Validate())
	})
}

func TestNewPostmarkSender(t *testing.T) {
	t.Parallel()

	t.Run("requires server token", func(t *testing.T) {
		t.Parallel()

		_, err := email.NewPostmarkSender(email.Config{})
		assert.ErrorIs(t, err, email.ErrInvalidConfig)
	})

	t.Run("account token optional", func(t *testing.T) {
		t.Parallel()

		sender, err := email.NewPostmarkSender(email.Config{PostmarkServerToken: "token"})
		require.NoError(t, err)
		assert.NotNil(t, sender)
	})
}

func TestDevSender(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("writes html and metadata", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sender := email.NewDevSender(dir)

		receipt, err := sender.Send(ctx, validMessage())
		require.NoError(t, err)
		assert.NotEmpty(t, receipt.MessageID)
		assert.False(t, receipt.Timestamp.IsZero())

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		var htmlPath, jsonPath string
		for _, e := range entries {
			switch {
			case strings.HasSuffix(e.Name(), ".html"):
				htmlPath = filepath.Join(dir, e.Name())
			case strings.HasSuffix(e.Name(), ".json"):
				jsonPath = filepath.Join(dir, e.Name())
			}
		}
		require.NotEmpty(t, htmlPath)
		require.NotEmpty(t, jsonPath)

		html, err := os.ReadFile(htmlPath)
		require.NoError(t, err)
		assert.Equal(t, "<p>hello</p>", string(html))

		raw, err := os.ReadFile(jsonPath)
		require.NoError(t, err)
		var meta map[string]any
		require.NoError(t, json.Unmarshal(raw, &meta))
		assert.Equal(t, "user@example.com", meta["to"])
		assert.Equal(t, "visitor@example.com", meta["reply_to"])
		assert.Equal(t, receipt.MessageID, meta["message_id"])
	})

	t.Run("filename derived from tag", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sender := email.NewDevSender(dir)

		msg := validMessage()
		msg.Tag = "Waitlist Confirmation!"

		_, err := sender.Send(ctx, msg)
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)

		found := false
		for _, e := range entries {
			if strings.Contains(e.Name(), "waitlist_confirmation") {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("invalid message writes nothing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sender := email.NewDevSender(dir)

		msg := validMessage()
		msg.To = ""

		_, err := sender.Send(ctx, msg)
		require.ErrorIs(t, err, email.ErrInvalidMessage)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("unwritable directory fails", func(t *testing.T) {
		t.Parallel()

		sender := email.NewDevSender("/dev/null/nope")

		_, err := sender.Send(ctx, validMessage())
		assert.ErrorIs(t, err, email.ErrSendFailed)
	})
}
