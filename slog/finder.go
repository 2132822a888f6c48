// Package slog provides logging decorators for service interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/scrivtools/scriv"
)

// Ensure LoggingFinder implements scriv.Finder.
var _ scriv.Finder = (*LoggingFinder)(nil)

// LoggingFinder wraps a Finder with discovery logging.
type LoggingFinder struct {
	next   scriv.Finder
	logger *slog.Logger
}

// NewLoggingFinder creates a new LoggingFinder.
func NewLoggingFinder(next scriv.Finder, logger *slog.Logger) *LoggingFinder {
	return &LoggingFinder{next: next, logger: logger}
}

// Discover delegates to the wrapped finder and logs the operation.
func (f *LoggingFinder) Discover(ctx context.Context, roots []string, maxDepth int) (infos []*scriv.ProjectInfo, err error) {
	defer func(begin time.Time) {
		f.logger.Info("project discovery",
			"roots", len(roots),
			"count", len(infos),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Discover(ctx, roots, maxDepth)
}
