package scriv

import (
	"context"
	"time"
)

// ProjectInfo describes a project discovered on disk, without opening it.
type ProjectInfo struct {
	Name     string    `json:"name"`
	Path     string    `json:"path"`
	Modified time.Time `json:"modified"`
}

// Finder locates writing projects on the local filesystem.
type Finder interface {
	// Discover scans roots for project directories up to maxDepth levels
	// deep. Hidden directories are not descended into and unreadable
	// directories are skipped. Results are unique by path and sorted by
	// name, case-insensitively.
	Discover(ctx context.Context, roots []string, maxDepth int) ([]*ProjectInfo, error)
}
