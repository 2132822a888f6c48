package scriv

import "strings"

// Kind classifies a binder entry. The vocabulary is fixed by the Scrivener
// index format; unknown values are preserved verbatim and treated as
// neither folder nor text.
type Kind string

// Binder entry kinds.
const (
	KindText           Kind = "Text"
	KindFolder         Kind = "Folder"
	KindDraftFolder    Kind = "DraftFolder"
	KindResearchFolder Kind = "ResearchFolder"
	KindTrashFolder    Kind = "TrashFolder"
)

// IsFolder reports whether the kind is a folder variant.
func (k Kind) IsFolder() bool {
	switch k {
	case KindFolder, KindDraftFolder, KindResearchFolder, KindTrashFolder:
		return true
	}
	return false
}

// IsText reports whether the kind carries document content.
func (k Kind) IsText() bool {
	return k == KindText
}

// Entry is a single node of a project's binder tree. Entries are built by
// parsing the project index; Created and Modified are kept as the opaque
// stamp strings found there.
type Entry struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Kind             Kind     `json:"kind"`
	Created          string   `json:"created,omitempty"`
	Modified         string   `json:"modified,omitempty"`
	IncludeInCompile bool     `json:"includeInCompile"`
	Children         []*Entry `json:"children,omitempty"`

	parent *Entry
}

// Parent returns the containing entry, or nil for a root entry.
// Parent links are assigned by NewBinder.
func (e *Entry) Parent() *Entry {
	return e.parent
}

// IsFolder reports whether the entry is a folder variant.
func (e *Entry) IsFolder() bool {
	return e.Kind.IsFolder()
}

// IsText reports whether the entry carries document content.
func (e *Entry) IsText() bool {
	return e.Kind.IsText()
}

// IsDraft reports whether the entry is the manuscript root folder.
func (e *Entry) IsDraft() bool {
	return e.Kind == KindDraftFolder
}

// Depth returns the number of ancestors above the entry. Root entries have
// depth zero.
func (e *Entry) Depth() int {
	depth := 0
	for p := e.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// Path returns the slash-joined titles from the root entry down to e.
func (e *Entry) Path() string {
	var titles []string
	for cur := e; cur != nil; cur = cur.parent {
		titles = append(titles, cur.Title)
	}
	for i, j := 0, len(titles)-1; i < j; i, j = i+1, j-1 {
		titles[i], titles[j] = titles[j], titles[i]
	}
	return strings.Join(titles, "/")
}

// Walk returns the entry and all of its descendants in depth-first,
// binder order. The receiver is always the first element.
func (e *Entry) Walk() []*Entry {
	all := []*Entry{e}
	for _, child := range e.Children {
		all = append(all, child.Walk()...)
	}
	return all
}

// FindByID searches the subtree rooted at e for an entry with the given ID.
// Returns nil if no entry matches.
func (e *Entry) FindByID(id string) *Entry {
	for _, item := range e.Walk() {
		if item.ID == id {
			return item
		}
	}
	return nil
}
