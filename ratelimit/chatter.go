// Package ratelimit provides client-side rate limiting for chat providers.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/scrivtools/scriv"
)

// Ensure Chatter implements scriv.Chatter at compile time.
var _ scriv.Chatter = (*Chatter)(nil)

// Chatter wraps another Chatter behind a token bucket, keeping bursts of
// chat calls inside provider rate limits.
type Chatter struct {
	next    scriv.Chatter
	limiter *rate.Limiter
}

// NewChatter creates a limited Chatter allowing rps requests per second
// with a burst of 1 (no bursting allowed).
func NewChatter(next scriv.Chatter, rps float64) *Chatter {
	return &Chatter{next: next, limiter: rate.NewLimiter(rate.Limit(rps), 1)}
}

// Chat blocks until the rate limit allows the call, then delegates.
// Returns an error if the context is canceled before the wait completes.
func (c *Chatter) Chat(ctx context.Context, req scriv.ChatRequest) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return c.next.Chat(ctx, req)
}
