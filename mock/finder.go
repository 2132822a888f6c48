package mock

import (
	"context"

	"github.com/scrivtools/scriv"
)

var _ scriv.Finder = (*Finder)(nil)

// Finder is a mock implementation of scriv.Finder.
type Finder struct {
	DiscoverFn func(ctx context.Context, roots []string, maxDepth int) ([]*scriv.ProjectInfo, error)
}

func (f *Finder) Discover(ctx context.Context, roots []string, maxDepth int) ([]*scriv.ProjectInfo, error) {
	return f.DiscoverFn(ctx, roots, maxDepth)
}
