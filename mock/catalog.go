package mock

import (
	"context"

	"github.com/scrivtools/scriv"
)

var _ scriv.Catalog = (*Catalog)(nil)

// Catalog is a mock implementation of scriv.Catalog.
type Catalog struct {
	RememberFn func(ctx context.Context, entry *scriv.CatalogEntry) error
	RecentFn   func(ctx context.Context, limit int) ([]*scriv.CatalogEntry, error)
	ForgetFn   func(ctx context.Context, path string) error
}

func (c *Catalog) Remember(ctx context.Context, entry *scriv.CatalogEntry) error {
	return c.RememberFn(ctx, entry)
}

func (c *Catalog) Recent(ctx context.Context, limit int) ([]*scriv.CatalogEntry, error) {
	return c.RecentFn(ctx, limit)
}

func (c *Catalog) Forget(ctx context.Context, path string) error {
	return c.ForgetFn(ctx, path)
}
