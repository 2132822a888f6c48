package fs

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/scrivtools/scriv"
	"github.com/scrivtools/scriv/scrivx"
)

// Scrivener drops this sentinel at the project root while it has the
// project open. Its presence alone means locked.
const lockFile = "user.lock"

const indexExt = ".scrivx"

// Project is a handle on an opened Scrivener project directory.
type Project struct {
	name string
	path string

	index  *scrivx.Index
	binder *scriv.Binder
	store  *Store

	// Now returns the current time, replaceable in tests so creation
	// stamps and snapshot names are predictable.
	Now func() time.Time
}

var _ scriv.Project = (*Project)(nil)

// Open loads the project at path.
// Returns ENOTFOUND if path does not exist, EINVALIDPROJECT if it is not
// a directory or contains no binder index, and EMALFORMEDINDEX if the
// index cannot be parsed.
func Open(path string) (*Project, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, scriv.Errorf(scriv.ENOTFOUND, "project not found: %s", path)
	} else if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, scriv.Errorf(scriv.EINVALIDPROJECT, "not a project directory: %s", path)
	}

	matches, err := filepath.Glob(filepath.Join(path, "*"+indexExt))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, scriv.Errorf(scriv.EINVALIDPROJECT, "no %s index in %s", indexExt, path)
	}

	index, err := scrivx.Parse(matches[0])
	if err != nil {
		return nil, err
	}

	base := filepath.Base(path)
	p := &Project{
		name:   strings.TrimSuffix(base, filepath.Ext(base)),
		path:   path,
		index:  index,
		binder: scriv.NewBinder(index.Entries()),
		Now:    time.Now,
	}
	p.store = NewStore(path)
	p.store.Now = func() time.Time { return p.Now() }
	return p, nil
}

// Name returns the project name, the directory base name without its
// extension.
func (p *Project) Name() string { return p.name }

// Path returns the project directory.
func (p *Project) Path() string { return p.path }

// Binder returns the binder tree parsed at open time, or rebuilt by the
// latest structural mutation.
func (p *Project) Binder() *scriv.Binder { return p.binder }

// Locked reports whether the lock sentinel is currently on disk. Checked
// fresh on every call, never cached.
func (p *Project) Locked() bool {
	_, err := os.Stat(filepath.Join(p.path, lockFile))
	return err == nil
}

// ReadContent returns the decoded document body of the entry. Missing and
// undecodable content both yield "".
func (p *Project) ReadContent(ctx context.Context, entry *scriv.Entry) (string, error) {
	if entry == nil {
		return "", scriv.Errorf(scriv.EINVALID, "entry required")
	}
	return p.store.ReadContent(entry.ID)
}

// ReadSynopsis returns the entry's synopsis, trimmed.
func (p *Project) ReadSynopsis(ctx context.Context, entry *scriv.Entry) (string, error) {
	if entry == nil {
		return "", scriv.Errorf(scriv.EINVALID, "entry required")
	}
	return p.store.ReadSynopsis(entry.ID)
}

// ReadNotes returns the decoded inspector notes of the entry.
func (p *Project) ReadNotes(ctx context.Context, entry *scriv.Entry) (string, error) {
	if entry == nil {
		return "", scriv.Errorf(scriv.EINVALID, "entry required")
	}
	return p.store.ReadNotes(entry.ID)
}

// WordCount counts whitespace-delimited tokens in the entry's content.
// Folders count zero. With recursive set it sums every text entry in the
// subtree, including the entry itself.
func (p *Project) WordCount(ctx context.Context, entry *scriv.Entry, recursive bool) (int, error) {
	if entry == nil {
		return 0, scriv.Errorf(scriv.EINVALID, "entry required")
	}
	if !recursive {
		return p.countWords(entry)
	}

	var total int
	for _, e := range entry.Walk() {
		n, err := p.countWords(e)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

func (p *Project) countWords(entry *scriv.Entry) (int, error) {
	if !entry.IsText() {
		return 0, nil
	}
	text, err := p.store.ReadContent(entry.ID)
	if err != nil {
		return 0, err
	}
	return len(strings.Fields(text)), nil
}

// Search scans the decoded content of every text entry line by line for
// the query, a regular expression, case-insensitively unless caseSensitive
// is set. Matched lines are returned trimmed, in document order.
// Returns EINVALID for an unparseable pattern.
func (p *Project) Search(ctx context.Context, query string, caseSensitive bool) ([]scriv.SearchMatch, error) {
	pattern := query
	if !caseSensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, scriv.Errorf(scriv.EINVALID, "invalid search pattern %q: %s", query, err)
	}

	var matches []scriv.SearchMatch
	for _, entry := range p.binder.All() {
		if !entry.IsText() {
			continue
		}
		text, err := p.store.ReadContent(entry.ID)
		if err != nil {
			return nil, err
		}
		if text == "" {
			continue
		}

		var lines []string
		for _, line := range strings.Split(text, "\n") {
			if re.MatchString(line) {
				lines = append(lines, strings.TrimSpace(line))
			}
		}
		if len(lines) > 0 {
			matches = append(matches, scriv.SearchMatch{Entry: entry, Lines: lines})
		}
	}
	return matches, nil
}

// Compile assembles the manuscript from the draft folder in binder order,
// skipping the draft folder's own heading. Folder headings are emitted
// whenever includeTitles is set; text entries are emitted only when marked
// for compile and non-empty. Returns "" when the project has no draft
// folder.
func (p *Project) Compile(ctx context.Context, includeTitles bool) (string, error) {
	draft := p.binder.DraftFolder()
	if draft == nil {
		return "", nil
	}

	var parts []string
	for _, e := range draft.Walk() {
		if e == draft {
			continue
		}

		if e.IsFolder() {
			if includeTitles {
				parts = append(parts, "\n"+heading(e.Depth())+" "+e.Title+"\n")
			}
			continue
		}
		if !e.IncludeInCompile {
			continue
		}

		text, err := p.store.ReadContent(e.ID)
		if err != nil {
			return "", err
		}
		if text == "" {
			continue
		}
		if includeTitles {
			parts = append(parts, "\n### "+e.Title+"\n")
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n"), nil
}

// CompileEntry assembles a single subtree, headed by the entry's own
// title when includeTitles is set. Unlike Compile it ignores the
// include-in-compile flag, so an excluded scene can still be read in
// place.
func (p *Project) CompileEntry(ctx context.Context, entry *scriv.Entry, includeTitles bool) (string, error) {
	if entry == nil {
		return "", scriv.Errorf(scriv.EINVALID, "entry required")
	}

	var parts []string
	for _, e := range entry.Walk() {
		if e == entry {
			if includeTitles {
				parts = append(parts, "# "+e.Title+"\n")
			}
			continue
		}

		if e.IsFolder() {
			if includeTitles {
				parts = append(parts, "\n"+heading(e.Depth()-entry.Depth()+1)+" "+e.Title+"\n")
			}
			continue
		}

		text, err := p.store.ReadContent(e.ID)
		if err != nil {
			return "", err
		}
		if text == "" {
			continue
		}
		if includeTitles {
			parts = append(parts, "\n### "+e.Title+"\n")
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n"), nil
}

// heading caps markdown heading depth at four.
func heading(level int) string {
	if level > 4 {
		level = 4
	}
	if level < 1 {
		level = 1
	}
	return strings.Repeat("#", level)
}

// WriteContent encodes and stores document text. With snapshot set,
// existing content is snapshotted first.
// Returns ELOCKED when the project is locked and EINVALIDTARGET when the
// entry is not a text document.
func (p *Project) WriteContent(ctx context.Context, entry *scriv.Entry, text string, snapshot bool) error {
	if entry == nil {
		return scriv.Errorf(scriv.EINVALID, "entry required")
	}
	if p.Locked() {
		return p.lockedErr()
	}
	if !entry.IsText() {
		return scriv.Errorf(scriv.EINVALIDTARGET, "cannot write content to %s %q", strings.ToLower(string(entry.Kind)), entry.Title)
	}
	return p.store.WriteContent(entry.ID, text, snapshot)
}

// WriteSynopsis stores the entry's synopsis as plain text. Any entry kind
// can carry a synopsis.
// Returns ELOCKED when the project is locked.
func (p *Project) WriteSynopsis(ctx context.Context, entry *scriv.Entry, text string) error {
	if entry == nil {
		return scriv.Errorf(scriv.EINVALID, "entry required")
	}
	if p.Locked() {
		return p.lockedErr()
	}
	return p.store.WriteSynopsis(entry.ID, text)
}

// WriteNotes encodes and stores the entry's inspector notes. With
// snapshot set, existing notes are snapshotted first. Any entry kind can
// carry notes.
// Returns ELOCKED when the project is locked.
func (p *Project) WriteNotes(ctx context.Context, entry *scriv.Entry, text string, snapshot bool) error {
	if entry == nil {
		return scriv.Errorf(scriv.EINVALID, "entry required")
	}
	if p.Locked() {
		return p.lockedErr()
	}
	return p.store.WriteNotes(entry.ID, text, snapshot)
}

// CreateSnapshot copies the entry's current content into the snapshot
// area and returns the snapshot file name. An empty label falls back to
// the default.
// Returns ELOCKED when the project is locked, EINVALIDTARGET when the
// entry is not a text document, and ENOTFOUND when the entry has no
// content file yet.
func (p *Project) CreateSnapshot(ctx context.Context, entry *scriv.Entry, label string) (string, error) {
	if entry == nil {
		return "", scriv.Errorf(scriv.EINVALID, "entry required")
	}
	if p.Locked() {
		return "", p.lockedErr()
	}
	if !entry.IsText() {
		return "", scriv.Errorf(scriv.EINVALIDTARGET, "cannot snapshot %s %q", strings.ToLower(string(entry.Kind)), entry.Title)
	}
	return p.store.SnapshotContent(entry.ID, label)
}

// CreateDocument adds a new text document under a folder: writes its
// initial files, patches the index on disk, rebuilds the binder, and
// returns the entry as resolved from the rebuilt binder. The filesystem
// write and the index write are not atomic; a crash in between leaves
// orphaned but harmless content files.
// Returns ELOCKED when the project is locked and EINVALIDTARGET when the
// parent is not a folder.
func (p *Project) CreateDocument(ctx context.Context, params scriv.CreateDocumentParams) (*scriv.Entry, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if p.Locked() {
		return nil, p.lockedErr()
	}
	if !params.Parent.IsFolder() {
		return nil, scriv.Errorf(scriv.EINVALIDTARGET, "parent %q is not a folder", params.Parent.Title)
	}

	id := strings.ToUpper(uuid.NewString())
	if params.Content != "" {
		if err := p.store.WriteContent(id, params.Content, false); err != nil {
			return nil, err
		}
	}
	if params.Synopsis != "" {
		if err := p.store.WriteSynopsis(id, params.Synopsis); err != nil {
			return nil, err
		}
	}

	include := true
	if params.IncludeInCompile != nil {
		include = *params.IncludeInCompile
	}
	position := -1
	if params.Position != nil {
		position = *params.Position
	}

	stamp := scriv.Timestamp(p.Now())
	item := scrivx.NewItem{
		ID:               id,
		Title:            params.Title,
		Kind:             scriv.KindText,
		Created:          stamp,
		Modified:         stamp,
		IncludeInCompile: include,
	}
	if err := p.index.InsertChild(params.Parent.ID, item, position); err != nil {
		return nil, err
	}
	if err := p.index.Write(p.index.Path()); err != nil {
		return nil, err
	}

	p.binder = scriv.NewBinder(p.index.Entries())
	entry := p.binder.FindByID(id)
	if entry == nil {
		return nil, scriv.Errorf(scriv.EINTERNAL, "created document %s missing from rebuilt binder", id)
	}
	return entry, nil
}

func (p *Project) lockedErr() error {
	return scriv.Errorf(scriv.ELOCKED, "project %q is open in Scrivener", p.name)
}
