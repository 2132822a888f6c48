package mock

import (
	"context"

	"github.com/scrivtools/scriv"
)

var _ scriv.Chatter = (*Chatter)(nil)

// Chatter is a mock implementation of scriv.Chatter.
type Chatter struct {
	ChatFn func(ctx context.Context, req scriv.ChatRequest) (string, error)
}

func (c *Chatter) Chat(ctx context.Context, req scriv.ChatRequest) (string, error) {
	return c.ChatFn(ctx, req)
}
