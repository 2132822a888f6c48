package scriv

import (
	"strings"
)

// Binder is the ordered forest of entries parsed from a project index.
type Binder struct {
	Items []*Entry `json:"items"`

	byID map[string]*Entry
}

// BinderStats summarizes binder contents.
type BinderStats struct {
	Items     int `json:"items"`
	Documents int `json:"documents"`
}

// NewBinder builds a binder from parsed root entries. Parent links are
// assigned for the whole forest. Entries are indexed by ID in depth-first
// order; when two entries share an ID the first one wins and later ones
// remain reachable only through tree traversal.
func NewBinder(items []*Entry) *Binder {
	b := &Binder{
		Items: items,
		byID:  make(map[string]*Entry),
	}
	for _, item := range items {
		linkParents(item, nil)
	}
	for _, e := range b.All() {
		if e.ID == "" {
			continue
		}
		if _, ok := b.byID[e.ID]; !ok {
			b.byID[e.ID] = e
		}
	}
	return b
}

func linkParents(e *Entry, parent *Entry) {
	e.parent = parent
	for _, child := range e.Children {
		linkParents(child, e)
	}
}

// All returns every entry in depth-first binder order.
func (b *Binder) All() []*Entry {
	var all []*Entry
	for _, item := range b.Items {
		all = append(all, item.Walk()...)
	}
	return all
}

// Stats counts entries and text documents.
func (b *Binder) Stats() BinderStats {
	var stats BinderStats
	for _, e := range b.All() {
		stats.Items++
		if e.IsText() {
			stats.Documents++
		}
	}
	return stats
}

// FindByID returns the entry with the given ID, or nil. IDs are uppercase
// in Scrivener indexes, so a lowercase form is retried uppercased.
func (b *Binder) FindByID(id string) *Entry {
	if e, ok := b.byID[id]; ok {
		return e
	}
	if e, ok := b.byID[strings.ToUpper(id)]; ok {
		return e
	}
	return nil
}

// FindByPath returns the entry whose slash-joined title path matches
// exactly, or nil.
func (b *Binder) FindByPath(path string) *Entry {
	for _, e := range b.All() {
		if e.Path() == path {
			return e
		}
	}
	return nil
}

// FindByTitle returns entries matching the title in binder order. Exact
// matches are case-sensitive whole-title comparisons; otherwise titles
// containing the query case-insensitively match.
func (b *Binder) FindByTitle(title string, exact bool) []*Entry {
	var matches []*Entry
	lower := strings.ToLower(title)
	for _, e := range b.All() {
		if exact {
			if e.Title == title {
				matches = append(matches, e)
			}
		} else if strings.Contains(strings.ToLower(e.Title), lower) {
			matches = append(matches, e)
		}
	}
	return matches
}

// DraftFolder returns the first draft folder in binder order, or nil when
// the project has none.
func (b *Binder) DraftFolder() *Entry {
	for _, e := range b.All() {
		if e.IsDraft() {
			return e
		}
	}
	return nil
}

// Resolve finds a single entry for a user-supplied identifier. Lookup
// order: ID, exact path, exact title, then substring title match.
// Returns ENOTFOUND if nothing matches and EAMBIGUOUS listing candidate
// paths when a title lookup matches more than one entry.
func (b *Binder) Resolve(identifier string) (*Entry, error) {
	if identifier == "" {
		return nil, Errorf(EINVALID, "identifier required")
	}

	if e := b.FindByID(identifier); e != nil {
		return e, nil
	}
	if e := b.FindByPath(identifier); e != nil {
		return e, nil
	}

	for _, exact := range []bool{true, false} {
		matches := b.FindByTitle(identifier, exact)
		switch len(matches) {
		case 0:
			continue
		case 1:
			return matches[0], nil
		default:
			paths := make([]string, 0, len(matches))
			for _, m := range matches {
				paths = append(paths, m.Path())
			}
			return nil, Errorf(EAMBIGUOUS, "identifier %q matches multiple entries: %s",
				identifier, strings.Join(paths, ", "))
		}
	}

	return nil, Errorf(ENOTFOUND, "no binder entry matches %q", identifier)
}
