package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/scrivtools/scriv"
)

// Compile-time interface verification.
var _ scriv.Catalog = (*CatalogService)(nil)

// CatalogService implements scriv.Catalog using SQLite.
type CatalogService struct {
	db *DB
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(db *DB) *CatalogService {
	return &CatalogService{db: db}
}

// Remember inserts or refreshes a catalog entry, keyed by project path.
// A zero LastOpened is set to the current time.
func (s *CatalogService) Remember(ctx context.Context, entry *scriv.CatalogEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	if entry.LastOpened.IsZero() {
		entry.LastOpened = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (path, name, items, documents, fingerprint, last_opened)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			name = excluded.name,
			items = excluded.items,
			documents = excluded.documents,
			fingerprint = excluded.fingerprint,
			last_opened = excluded.last_opened
	`, entry.Path, entry.Name, entry.Items, entry.Documents, entry.Fingerprint,
		entry.LastOpened.Format(time.RFC3339))

	return err
}

// Recent retrieves catalog entries ordered by most recently opened.
// Limit <= 0 returns all entries.
func (s *CatalogService) Recent(ctx context.Context, limit int) ([]*scriv.CatalogEntry, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT path, name, items, documents, fingerprint, last_opened
		FROM projects
		ORDER BY last_opened DESC
	`)
	appendLimit(&query, &args, limit)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*scriv.CatalogEntry
	for rows.Next() {
		var entry scriv.CatalogEntry
		var lastOpened string

		if err := rows.Scan(&entry.Path, &entry.Name, &entry.Items, &entry.Documents,
			&entry.Fingerprint, &lastOpened); err != nil {
			return nil, err
		}

		entry.LastOpened, err = parseRFC3339(lastOpened, "last_opened")
		if err != nil {
			return nil, err
		}

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

// Forget removes the catalog entry for a project path.
func (s *CatalogService) Forget(ctx context.Context, path string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM projects WHERE path = ?", path)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return scriv.Errorf(scriv.ENOTFOUND, "project not in catalog: %s", path)
	}

	return nil
}

// Fingerprint derives a stable hash of a binder's shape, so the catalog
// can tell whether a project changed since it was last opened. Identifier,
// title, and kind of every entry contribute, in binder order.
func Fingerprint(b *scriv.Binder) string {
	var sb strings.Builder
	for _, e := range b.All() {
		sb.WriteString(e.ID)
		sb.WriteByte(0)
		sb.WriteString(e.Title)
		sb.WriteByte(0)
		sb.WriteString(string(e.Kind))
		sb.WriteByte('\n')
	}
	return fmt.Sprintf("%016x", xxhash.Sum64String(sb.String()))
}
