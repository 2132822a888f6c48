package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrivtools/scriv"
	"github.com/scrivtools/scriv/mock"
	scrivslog "github.com/scrivtools/scriv/slog"
)

func TestLoggingChatter_Chat(t *testing.T) {
	t.Parallel()

	t.Run("logs sizes but never text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Chatter{
			ChatFn: func(ctx context.Context, req scriv.ChatRequest) (string, error) {
				return "A quiet reply.", nil
			},
		}

		chatter := scrivslog.NewLoggingChatter(inner, logger)
		reply, err := chatter.Chat(context.Background(), scriv.ChatRequest{
			Message: "Tighten this scene?",
			Context: "He walked. He stopped. He walked again.",
		})

		require.NoError(t, err)
		assert.Equal(t, "A quiet reply.", reply)

		output := buf.String()
		assert.Contains(t, output, "chat exchange")
		assert.Contains(t, output, "message_len=19")
		assert.Contains(t, output, "reply_len=14")
		assert.NotContains(t, output, "quiet reply")
		assert.NotContains(t, output, "He walked")
	})
}
