package scriv

import (
	"context"
	"time"
)

// CatalogEntry records a project the user has opened before, along with the
// binder shape observed at the time.
type CatalogEntry struct {
	Path        string    `json:"path"`
	Name        string    `json:"name"`
	Items       int       `json:"items"`
	Documents   int       `json:"documents"`
	Fingerprint string    `json:"fingerprint"`
	LastOpened  time.Time `json:"lastOpened"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *CatalogEntry) Validate() error {
	if e.Path == "" {
		return Errorf(EINVALID, "catalog entry path required")
	}
	if e.Name == "" {
		return Errorf(EINVALID, "catalog entry name required")
	}
	return nil
}

// Catalog persists the set of known projects.
type Catalog interface {
	// Remember inserts or refreshes an entry, keyed by path.
	Remember(ctx context.Context, entry *CatalogEntry) error

	// Recent retrieves entries ordered by most recently opened.
	// Limit <= 0 returns all entries.
	Recent(ctx context.Context, limit int) ([]*CatalogEntry, error)

	// Forget removes the entry for a path.
	// Returns ENOTFOUND if no entry exists.
	Forget(ctx context.Context, path string) error
}
