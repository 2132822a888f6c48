// Package fs implements project access against the real directory layout
// of a Scrivener project: the .scrivx index, per-document data files, the
// snapshot area, and the advisory lock sentinel.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/scrivtools/scriv"
	"github.com/scrivtools/scriv/rtf"
)

// File names Scrivener keeps inside each document's data directory.
const (
	contentFile  = "content.rtf"
	synopsisFile = "synopsis.txt"
	notesFile    = "notes.rtf"
)

// Snapshot labels used when the caller does not supply one.
const (
	contentBackupLabel = "content-backup"
	notesBackupLabel   = "notes-backup"
)

// Store reads and writes per-document files under a project root. It is
// addressed purely by entry identifier and knows nothing about the binder;
// kind and lock checks belong to Project.
type Store struct {
	root string

	// Now returns the current time, replaceable in tests so snapshot
	// names are predictable.
	Now func() time.Time
}

// NewStore creates a Store rooted at the project directory.
func NewStore(root string) *Store {
	return &Store{root: root, Now: time.Now}
}

func (s *Store) dataDir(id string) string {
	return filepath.Join(s.root, "Files", "Data", id)
}

func (s *Store) snapshotDir(id string) string {
	return filepath.Join(s.root, "Snapshots", "Data", id)
}

// ReadContent returns the decoded document body for id. A missing file
// yields empty text. Undecodable bytes also yield empty text: the file on
// disk stays untouched, so nothing is lost by degrading the read.
func (s *Store) ReadContent(id string) (string, error) {
	return s.readRTF(filepath.Join(s.dataDir(id), contentFile))
}

// ReadNotes returns the decoded inspector notes for id, degrading like
// ReadContent.
func (s *Store) ReadNotes(id string) (string, error) {
	return s.readRTF(filepath.Join(s.dataDir(id), notesFile))
}

// ReadSynopsis returns the synopsis for id, trimmed. Missing file yields
// empty text. The synopsis is plain UTF-8, no codec involved.
func (s *Store) ReadSynopsis(id string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dataDir(id), synopsisFile))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// WriteContent encodes and stores the document body for id. With
// snapshotFirst set, an existing content file is first copied verbatim
// into the snapshot area. Best-effort, not a transaction: a crash between
// the two steps leaves the snapshot without the update.
func (s *Store) WriteContent(id, text string, snapshotFirst bool) error {
	if snapshotFirst {
		if _, err := s.snapshotIfExists(id, contentFile, contentBackupLabel); err != nil {
			return err
		}
	}
	return s.writeFile(id, contentFile, rtf.Encode(text))
}

// WriteNotes stores inspector notes for id with the same snapshot
// discipline as WriteContent.
func (s *Store) WriteNotes(id, text string, snapshotFirst bool) error {
	if snapshotFirst {
		if _, err := s.snapshotIfExists(id, notesFile, notesBackupLabel); err != nil {
			return err
		}
	}
	return s.writeFile(id, notesFile, rtf.Encode(text))
}

// WriteSynopsis stores the synopsis for id as plain text. No codec, no
// snapshot.
func (s *Store) WriteSynopsis(id, text string) error {
	return s.writeFile(id, synopsisFile, []byte(text))
}

// SnapshotContent copies the current document body of id into the
// snapshot area and returns the snapshot file name. An empty label falls
// back to the default.
// Returns ENOTFOUND if id has no content file.
func (s *Store) SnapshotContent(id, label string) (string, error) {
	return s.snapshot(id, contentFile, label, contentBackupLabel)
}

// SnapshotNotes copies the current notes of id into the snapshot area and
// returns the snapshot file name.
// Returns ENOTFOUND if id has no notes file.
func (s *Store) SnapshotNotes(id, label string) (string, error) {
	return s.snapshot(id, notesFile, label, notesBackupLabel)
}

func (s *Store) readRTF(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	text, err := rtf.Decode(data)
	if err != nil {
		return "", nil
	}
	return text, nil
}

func (s *Store) writeFile(id, name string, data []byte) error {
	dir := s.dataDir(id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, name), data, 0o644)
}

func (s *Store) snapshot(id, name, label, defaultLabel string) (string, error) {
	snapName, err := s.snapshotIfExists(id, name, pickLabel(label, defaultLabel))
	if err != nil {
		return "", err
	}
	if snapName == "" {
		return "", scriv.Errorf(scriv.ENOTFOUND, "no %s file for %q to snapshot", name, id)
	}
	return snapName, nil
}

// snapshotIfExists copies the named data file verbatim into the snapshot
// area. Returns the snapshot file name, or "" when the source file does
// not exist.
func (s *Store) snapshotIfExists(id, name, label string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dataDir(id), name))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	dir := s.snapshotDir(id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	snapName := fmt.Sprintf("%s %s", scriv.Timestamp(s.Now()), SanitizeLabel(label))
	if err := os.WriteFile(filepath.Join(dir, snapName), data, 0o644); err != nil {
		return "", err
	}
	return snapName, nil
}

func pickLabel(label, fallback string) string {
	if strings.TrimSpace(SanitizeLabel(label)) == "" {
		return fallback
	}
	return label
}

// SanitizeLabel strips every character outside letters, digits,
// whitespace, and hyphens, keeping snapshot names safe as file names.
func SanitizeLabel(label string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '-' {
			return r
		}
		return -1
	}, label)
}
