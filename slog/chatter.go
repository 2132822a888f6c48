package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/scrivtools/scriv"
)

// Ensure LoggingChatter implements scriv.Chatter.
var _ scriv.Chatter = (*LoggingChatter)(nil)

// LoggingChatter wraps a Chatter with per-exchange logging. Manuscript
// text and replies are never logged, only their sizes.
type LoggingChatter struct {
	next   scriv.Chatter
	logger *slog.Logger
}

// NewLoggingChatter creates a new LoggingChatter.
func NewLoggingChatter(next scriv.Chatter, logger *slog.Logger) *LoggingChatter {
	return &LoggingChatter{next: next, logger: logger}
}

// Chat delegates to the wrapped chatter and logs the exchange.
func (c *LoggingChatter) Chat(ctx context.Context, req scriv.ChatRequest) (reply string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("chat exchange",
			"message_len", len(req.Message),
			"context_len", len(req.Context),
			"reply_len", len(reply),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Chat(ctx, req)
}
