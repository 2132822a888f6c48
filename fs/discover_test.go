package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrivtools/scriv/fs"
)

// seedProject creates a bare but valid project directory: a .scriv dir
// holding a matching .scrivx file.
func seedProject(t *testing.T, parent, name string) string {
	t.Helper()
	root := filepath.Join(parent, name+".scriv")
	require.NoError(t, os.MkdirAll(root, 0o755))
	index := `<?xml version="1.0" encoding="UTF-8"?><ScrivenerProject Version="2.0"><Binder/></ScrivenerProject>`
	require.NoError(t, os.WriteFile(filepath.Join(root, name+".scrivx"), []byte(index), 0o644))
	return root
}

func TestFinder_Discover(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("finds projects sorted by name", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		seedProject(t, dir, "banana")
		seedProject(t, dir, "Apple")

		infos, err := fs.NewFinder().Discover(ctx, []string{dir}, fs.DefaultMaxDepth)
		require.NoError(t, err)
		require.Len(t, infos, 2)
		assert.Equal(t, "Apple", infos[0].Name)
		assert.Equal(t, "banana", infos[1].Name)
		assert.False(t, infos[0].Modified.IsZero())
	})

	t.Run("descends into subdirectories up to the maximum depth", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		nested := filepath.Join(dir, "sub", "deep")
		require.NoError(t, os.MkdirAll(nested, 0o755))
		seedProject(t, nested, "Nested")

		infos, err := fs.NewFinder().Discover(ctx, []string{dir}, fs.DefaultMaxDepth)
		require.NoError(t, err)
		require.Len(t, infos, 1)
		assert.Equal(t, "Nested", infos[0].Name)

		infos, err = fs.NewFinder().Discover(ctx, []string{dir}, 1)
		require.NoError(t, err)
		assert.Empty(t, infos)
	})

	t.Run("skips directories without an index", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "Empty.scriv"), 0o755))

		infos, err := fs.NewFinder().Discover(ctx, []string{dir}, fs.DefaultMaxDepth)
		require.NoError(t, err)
		assert.Empty(t, infos)
	})

	t.Run("skips hidden directories", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		hidden := filepath.Join(dir, ".backups")
		require.NoError(t, os.MkdirAll(hidden, 0o755))
		seedProject(t, hidden, "Secret")

		infos, err := fs.NewFinder().Discover(ctx, []string{dir}, fs.DefaultMaxDepth)
		require.NoError(t, err)
		assert.Empty(t, infos)
	})

	t.Run("does not descend into projects", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		outer := seedProject(t, dir, "Outer")
		seedProject(t, filepath.Join(outer, "Files"), "Inner")

		infos, err := fs.NewFinder().Discover(ctx, []string{dir}, fs.DefaultMaxDepth)
		require.NoError(t, err)
		require.Len(t, infos, 1)
		assert.Equal(t, "Outer", infos[0].Name)
	})

	t.Run("deduplicates overlapping roots", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		seedProject(t, dir, "Novel")

		infos, err := fs.NewFinder().Discover(ctx, []string{dir, dir}, fs.DefaultMaxDepth)
		require.NoError(t, err)
		assert.Len(t, infos, 1)
	})

	t.Run("unreadable root yields no results", func(t *testing.T) {
		t.Parallel()

		infos, err := fs.NewFinder().Discover(ctx, []string{filepath.Join(t.TempDir(), "absent")}, fs.DefaultMaxDepth)
		require.NoError(t, err)
		assert.Empty(t, infos)
	})
}
