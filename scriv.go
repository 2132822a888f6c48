// Package scriv provides programmatic access to Scrivener writing projects.
// It parses the .scrivx binder index, reads and writes per-document RTF and
// plain-text files, searches and compiles manuscript text, and exposes the
// project over CLI, MCP, and HTTP surfaces.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or mechanism (e.g., fs/, sqlite/, scrivx/).
package scriv

import "time"

// TimestampLayout is the layout Scrivener uses for item stamps and
// snapshot file names.
const TimestampLayout = "2006-01-02-15-04-05"

// Timestamp formats t in Scrivener's stamp layout, local time.
func Timestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}
