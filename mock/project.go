package mock

import (
	"context"

	"github.com/scrivtools/scriv"
)

var _ scriv.Project = (*Project)(nil)

// Project is a mock implementation of scriv.Project.
type Project struct {
	NameFn   func() string
	PathFn   func() string
	BinderFn func() *scriv.Binder
	LockedFn func() bool

	ReadContentFn  func(ctx context.Context, entry *scriv.Entry) (string, error)
	ReadSynopsisFn func(ctx context.Context, entry *scriv.Entry) (string, error)
	ReadNotesFn    func(ctx context.Context, entry *scriv.Entry) (string, error)
	WordCountFn    func(ctx context.Context, entry *scriv.Entry, recursive bool) (int, error)
	SearchFn       func(ctx context.Context, query string, caseSensitive bool) ([]scriv.SearchMatch, error)
	CompileFn      func(ctx context.Context, includeTitles bool) (string, error)
	CompileEntryFn func(ctx context.Context, entry *scriv.Entry, includeTitles bool) (string, error)

	WriteContentFn   func(ctx context.Context, entry *scriv.Entry, text string, snapshot bool) error
	WriteSynopsisFn  func(ctx context.Context, entry *scriv.Entry, text string) error
	WriteNotesFn     func(ctx context.Context, entry *scriv.Entry, text string, snapshot bool) error
	CreateSnapshotFn func(ctx context.Context, entry *scriv.Entry, label string) (string, error)
	CreateDocumentFn func(ctx context.Context, params scriv.CreateDocumentParams) (*scriv.Entry, error)
}

func (p *Project) Name() string {
	return p.NameFn()
}

func (p *Project) Path() string {
	return p.PathFn()
}

func (p *Project) Binder() *scriv.Binder {
	return p.BinderFn()
}

func (p *Project) Locked() bool {
	return p.LockedFn()
}

func (p *Project) ReadContent(ctx context.Context, entry *scriv.Entry) (string, error) {
	return p.ReadContentFn(ctx, entry)
}

func (p *Project) ReadSynopsis(ctx context.Context, entry *scriv.Entry) (string, error) {
	return p.ReadSynopsisFn(ctx, entry)
}

func (p *Project) ReadNotes(ctx context.Context, entry *scriv.Entry) (string, error) {
	return p.ReadNotesFn(ctx, entry)
}

func (p *Project) WordCount(ctx context.Context, entry *scriv.Entry, recursive bool) (int, error) {
	return p.WordCountFn(ctx, entry, recursive)
}

func (p *Project) Search(ctx context.Context, query string, caseSensitive bool) ([]scriv.SearchMatch, error) {
	return p.SearchFn(ctx, query, caseSensitive)
}

func (p *Project) Compile(ctx context.Context, includeTitles bool) (string, error) {
	return p.CompileFn(ctx, includeTitles)
}

func (p *Project) CompileEntry(ctx context.Context, entry *scriv.Entry, includeTitles bool) (string, error) {
	return p.CompileEntryFn(ctx, entry, includeTitles)
}

func (p *Project) WriteContent(ctx context.Context, entry *scriv.Entry, text string, snapshot bool) error {
	return p.WriteContentFn(ctx, entry, text, snapshot)
}

func (p *Project) WriteSynopsis(ctx context.Context, entry *scriv.Entry, text string) error {
	return p.WriteSynopsisFn(ctx, entry, text)
}

func (p *Project) WriteNotes(ctx context.Context, entry *scriv.Entry, text string, snapshot bool) error {
	return p.WriteNotesFn(ctx, entry, text, snapshot)
}

func (p *Project) CreateSnapshot(ctx context.Context, entry *scriv.Entry, label string) (string, error) {
	return p.CreateSnapshotFn(ctx, entry, label)
}

func (p *Project) CreateDocument(ctx context.Context, params scriv.CreateDocumentParams) (*scriv.Entry, error) {
	return p.CreateDocumentFn(ctx, params)
}
