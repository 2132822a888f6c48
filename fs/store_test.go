package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrivtools/scriv"
	"github.com/scrivtools/scriv/fs"
	"github.com/scrivtools/scriv/rtf"
)

const storeID = "AAAAAAAA-0000-0000-0000-000000000001"

func storeAt(t *testing.T) (*fs.Store, string) {
	t.Helper()
	root := t.TempDir()
	s := fs.NewStore(root)
	s.Now = func() time.Time { return time.Date(2025, 3, 1, 9, 30, 0, 0, time.Local) }
	return s, root
}

func TestStore_Content(t *testing.T) {
	t.Parallel()

	t.Run("round trips text through the codec", func(t *testing.T) {
		t.Parallel()
		s, root := storeAt(t)

		err := s.WriteContent(storeID, "The rain fell.\n\nIt kept falling.", false)
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(root, "Files", "Data", storeID, "content.rtf"))
		require.NoError(t, err)
		assert.True(t, len(data) > 0)

		got, err := s.ReadContent(storeID)
		require.NoError(t, err)
		assert.Equal(t, "The rain fell.\n\nIt kept falling.", got)
	})

	t.Run("missing file reads as empty text", func(t *testing.T) {
		t.Parallel()
		s, _ := storeAt(t)

		got, err := s.ReadContent(storeID)
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("undecodable file degrades to empty text", func(t *testing.T) {
		t.Parallel()
		s, root := storeAt(t)

		dir := filepath.Join(root, "Files", "Data", storeID)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "content.rtf"), []byte("not rtf at all"), 0o644))

		got, err := s.ReadContent(storeID)
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})
}

func TestStore_Synopsis(t *testing.T) {
	t.Parallel()

	t.Run("stores plain text without a codec", func(t *testing.T) {
		t.Parallel()
		s, root := storeAt(t)

		require.NoError(t, s.WriteSynopsis(storeID, "A short summary."))

		data, err := os.ReadFile(filepath.Join(root, "Files", "Data", storeID, "synopsis.txt"))
		require.NoError(t, err)
		assert.Equal(t, "A short summary.", string(data))
	})

	t.Run("trims on read", func(t *testing.T) {
		t.Parallel()
		s, _ := storeAt(t)

		require.NoError(t, s.WriteSynopsis(storeID, "  padded  \n"))

		got, err := s.ReadSynopsis(storeID)
		require.NoError(t, err)
		assert.Equal(t, "padded", got)
	})

	t.Run("missing file reads as empty text", func(t *testing.T) {
		t.Parallel()
		s, _ := storeAt(t)

		got, err := s.ReadSynopsis(storeID)
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})
}

func TestStore_Notes(t *testing.T) {
	t.Parallel()
	s, _ := storeAt(t)

	require.NoError(t, s.WriteNotes(storeID, "Check the timeline here.", false))

	got, err := s.ReadNotes(storeID)
	require.NoError(t, err)
	assert.Equal(t, "Check the timeline here.", got)
}

func TestStore_SnapshotOnWrite(t *testing.T) {
	t.Parallel()

	t.Run("preserves prior content verbatim", func(t *testing.T) {
		t.Parallel()
		s, root := storeAt(t)

		require.NoError(t, s.WriteContent(storeID, "first draft", false))
		prior, err := os.ReadFile(filepath.Join(root, "Files", "Data", storeID, "content.rtf"))
		require.NoError(t, err)

		require.NoError(t, s.WriteContent(storeID, "second draft", true))

		snapPath := filepath.Join(root, "Snapshots", "Data", storeID, "2025-03-01-09-30-00 content-backup")
		data, err := os.ReadFile(snapPath)
		require.NoError(t, err)
		assert.Equal(t, prior, data)

		got, err := s.ReadContent(storeID)
		require.NoError(t, err)
		assert.Equal(t, "second draft", got)
	})

	t.Run("no snapshot when nothing exists yet", func(t *testing.T) {
		t.Parallel()
		s, root := storeAt(t)

		require.NoError(t, s.WriteContent(storeID, "first draft", true))

		_, err := os.Stat(filepath.Join(root, "Snapshots", "Data", storeID))
		assert.True(t, os.IsNotExist(err))

		got, err := s.ReadContent(storeID)
		require.NoError(t, err)
		assert.Equal(t, "first draft", got)
	})

	t.Run("notes use their own label", func(t *testing.T) {
		t.Parallel()
		s, root := storeAt(t)

		require.NoError(t, s.WriteNotes(storeID, "old notes", false))
		require.NoError(t, s.WriteNotes(storeID, "new notes", true))

		snapPath := filepath.Join(root, "Snapshots", "Data", storeID, "2025-03-01-09-30-00 notes-backup")
		data, err := os.ReadFile(snapPath)
		require.NoError(t, err)

		text, err := rtf.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, "old notes", text)
	})
}

func TestStore_SnapshotContent(t *testing.T) {
	t.Parallel()

	t.Run("returns the timestamped file name", func(t *testing.T) {
		t.Parallel()
		s, root := storeAt(t)

		require.NoError(t, s.WriteContent(storeID, "keep this", false))

		name, err := s.SnapshotContent(storeID, "before revision")
		require.NoError(t, err)
		assert.Equal(t, "2025-03-01-09-30-00 before revision", name)

		_, err = os.Stat(filepath.Join(root, "Snapshots", "Data", storeID, name))
		assert.NoError(t, err)
	})

	t.Run("sanitizes the label", func(t *testing.T) {
		t.Parallel()
		s, _ := storeAt(t)

		require.NoError(t, s.WriteContent(storeID, "keep this", false))

		name, err := s.SnapshotContent(storeID, "v1: draft! (rough)")
		require.NoError(t, err)
		assert.Equal(t, "2025-03-01-09-30-00 v1 draft rough", name)
	})

	t.Run("empty label falls back to the default", func(t *testing.T) {
		t.Parallel()
		s, _ := storeAt(t)

		require.NoError(t, s.WriteContent(storeID, "keep this", false))

		name, err := s.SnapshotContent(storeID, "")
		require.NoError(t, err)
		assert.Equal(t, "2025-03-01-09-30-00 content-backup", name)
	})

	t.Run("missing source file is not found", func(t *testing.T) {
		t.Parallel()
		s, _ := storeAt(t)

		_, err := s.SnapshotContent(storeID, "label")
		assert.Equal(t, scriv.ENOTFOUND, scriv.ErrorCode(err))
	})
}

func TestSanitizeLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		label string
		want  string
	}{
		{name: "plain label unchanged", label: "before revision", want: "before revision"},
		{name: "punctuation stripped", label: "v1: draft! (rough)", want: "v1 draft rough"},
		{name: "hyphen kept", label: "content-backup", want: "content-backup"},
		{name: "unicode letters kept", label: "café draft", want: "café draft"},
		{name: "slashes stripped", label: "a/b\\c", want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fs.SanitizeLabel(tt.label))
		})
	}
}
