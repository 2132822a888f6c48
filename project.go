package scriv

import "context"

// Project provides read and write access to one opened writing project.
// Implementations resolve entries against a binder parsed at open time;
// mutations re-check the project lock on every call.
type Project interface {
	// Name returns the project name, derived from the project directory.
	Name() string

	// Path returns the project directory.
	Path() string

	// Binder returns the binder tree parsed at open time. CreateDocument
	// replaces the tree, so callers should not hold on to the result
	// across mutations.
	Binder() *Binder

	// Locked reports whether the project is currently open in Scrivener.
	// The sentinel file is checked fresh on every call.
	Locked() bool

	// ReadContent returns the decoded text of the entry's document.
	// Missing and undecodable content both yield "".
	ReadContent(ctx context.Context, entry *Entry) (string, error)

	// ReadSynopsis returns the entry's synopsis, trimmed. Missing
	// synopsis yields "".
	ReadSynopsis(ctx context.Context, entry *Entry) (string, error)

	// ReadNotes returns the decoded text of the entry's notes.
	// Missing and undecodable notes both yield "".
	ReadNotes(ctx context.Context, entry *Entry) (string, error)

	// WordCount counts whitespace-delimited tokens in the entry's
	// content. With recursive set it sums every text entry in the
	// subtree, including the entry itself.
	WordCount(ctx context.Context, entry *Entry, recursive bool) (int, error)

	// Search scans decoded content of all text entries line by line for
	// the query, a regular expression. Matching is case-insensitive
	// unless caseSensitive is set. Returns EINVALID for an unparseable
	// pattern.
	Search(ctx context.Context, query string, caseSensitive bool) ([]SearchMatch, error)

	// Compile assembles the manuscript from the draft folder in binder
	// order. Returns "" when the project has no draft folder.
	Compile(ctx context.Context, includeTitles bool) (string, error)

	// CompileEntry assembles a single subtree, headed by the entry's own
	// title when includeTitles is set.
	CompileEntry(ctx context.Context, entry *Entry, includeTitles bool) (string, error)

	// WriteContent encodes and stores document text. With snapshot set,
	// existing content is snapshotted before being replaced.
	// Returns ELOCKED when the project is locked and EINVALIDTARGET when
	// the entry is not a text document.
	WriteContent(ctx context.Context, entry *Entry, text string, snapshot bool) error

	// WriteSynopsis stores the entry's synopsis as plain text.
	// Returns ELOCKED when the project is locked.
	WriteSynopsis(ctx context.Context, entry *Entry, text string) error

	// WriteNotes encodes and stores the entry's notes. With snapshot set,
	// existing notes are snapshotted before being replaced.
	// Returns ELOCKED when the project is locked.
	WriteNotes(ctx context.Context, entry *Entry, text string, snapshot bool) error

	// CreateSnapshot copies the entry's current content into the
	// snapshot area and returns the snapshot file name.
	// Returns ELOCKED when the project is locked, EINVALIDTARGET when
	// the entry is not a text document, and ENOTFOUND when the entry has
	// no content file yet.
	CreateSnapshot(ctx context.Context, entry *Entry, label string) (string, error)

	// CreateDocument adds a new text document under a folder, writes its
	// files, patches the index on disk, and rebuilds the binder. Returns
	// the new entry as resolved from the rebuilt binder.
	// Returns ELOCKED when the project is locked and EINVALIDTARGET when
	// the parent is not a folder.
	CreateDocument(ctx context.Context, params CreateDocumentParams) (*Entry, error)
}

// ProjectOpener opens the project directory at path. Servers hold one so
// tests can substitute projects without touching the filesystem.
type ProjectOpener func(path string) (Project, error)

// CreateDocumentParams holds the inputs for Project.CreateDocument.
// Optional fields follow Scrivener defaults when nil: new documents are
// included in compile and appended after their siblings.
type CreateDocumentParams struct {
	Title    string
	Parent   *Entry
	Content  string
	Synopsis string

	// IncludeInCompile defaults to true when nil.
	IncludeInCompile *bool

	// Position is the index among the parent's children. Nil or
	// out-of-range appends.
	Position *int
}

// Validate returns an error if the params cannot identify a creatable
// document.
func (p *CreateDocumentParams) Validate() error {
	if p.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if p.Parent == nil {
		return Errorf(EINVALID, "parent folder required")
	}
	return nil
}

// SearchMatch pairs an entry with the trimmed lines of its content that
// matched a search, in document order.
type SearchMatch struct {
	Entry *Entry   `json:"entry"`
	Lines []string `json:"lines"`
}
