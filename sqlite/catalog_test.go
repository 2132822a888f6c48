package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrivtools/scriv"
	"github.com/scrivtools/scriv/sqlite"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func catalogEntry(path, name string, opened time.Time) *scriv.CatalogEntry {
	return &scriv.CatalogEntry{
		Path:        path,
		Name:        name,
		Items:       7,
		Documents:   3,
		Fingerprint: "00000000deadbeef",
		LastOpened:  opened,
	}
}

func TestCatalogService_Remember(t *testing.T) {
	t.Parallel()

	t.Run("inserts a new entry", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCatalogService(setupTestDB(t))
		ctx := context.Background()

		entry := catalogEntry("/home/w/Novel.scriv", "Novel", time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC))
		require.NoError(t, svc.Remember(ctx, entry))

		entries, err := svc.Recent(ctx, 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Novel", entries[0].Name)
		assert.Equal(t, 7, entries[0].Items)
		assert.Equal(t, 3, entries[0].Documents)
		assert.Equal(t, "00000000deadbeef", entries[0].Fingerprint)
		assert.True(t, entries[0].LastOpened.Equal(entry.LastOpened))
	})

	t.Run("refreshes an existing path instead of duplicating", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCatalogService(setupTestDB(t))
		ctx := context.Background()

		first := catalogEntry("/home/w/Novel.scriv", "Novel", time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC))
		require.NoError(t, svc.Remember(ctx, first))

		second := catalogEntry("/home/w/Novel.scriv", "Novel", time.Date(2025, 2, 5, 12, 0, 0, 0, time.UTC))
		second.Items = 9
		second.Fingerprint = "00000000cafebabe"
		require.NoError(t, svc.Remember(ctx, second))

		entries, err := svc.Recent(ctx, 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 9, entries[0].Items)
		assert.Equal(t, "00000000cafebabe", entries[0].Fingerprint)
		assert.True(t, entries[0].LastOpened.Equal(second.LastOpened))
	})

	t.Run("fills in a zero last opened time", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCatalogService(setupTestDB(t))

		entry := catalogEntry("/home/w/Novel.scriv", "Novel", time.Time{})
		require.NoError(t, svc.Remember(context.Background(), entry))
		assert.False(t, entry.LastOpened.IsZero())
	})

	t.Run("rejects an entry without a path", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCatalogService(setupTestDB(t))

		err := svc.Remember(context.Background(), &scriv.CatalogEntry{Name: "Novel"})
		assert.Equal(t, scriv.EINVALID, scriv.ErrorCode(err))
	})
}

func TestCatalogService_Recent(t *testing.T) {
	t.Parallel()

	t.Run("orders by most recently opened", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCatalogService(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, svc.Remember(ctx, catalogEntry("/w/Old.scriv", "Old", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))))
		require.NoError(t, svc.Remember(ctx, catalogEntry("/w/New.scriv", "New", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))))
		require.NoError(t, svc.Remember(ctx, catalogEntry("/w/Mid.scriv", "Mid", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))))

		entries, err := svc.Recent(ctx, 0)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "New", entries[0].Name)
		assert.Equal(t, "Mid", entries[1].Name)
		assert.Equal(t, "Old", entries[2].Name)
	})

	t.Run("applies the limit", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCatalogService(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, svc.Remember(ctx, catalogEntry("/w/Old.scriv", "Old", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))))
		require.NoError(t, svc.Remember(ctx, catalogEntry("/w/New.scriv", "New", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))))

		entries, err := svc.Recent(ctx, 1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "New", entries[0].Name)
	})

	t.Run("empty catalog yields no entries", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCatalogService(setupTestDB(t))

		entries, err := svc.Recent(context.Background(), 0)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestCatalogService_Forget(t *testing.T) {
	t.Parallel()

	t.Run("removes the entry", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCatalogService(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, svc.Remember(ctx, catalogEntry("/w/Novel.scriv", "Novel", time.Now().UTC())))
		require.NoError(t, svc.Forget(ctx, "/w/Novel.scriv"))

		entries, err := svc.Recent(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("unknown path is not found", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCatalogService(setupTestDB(t))

		err := svc.Forget(context.Background(), "/w/Nope.scriv")
		assert.Equal(t, scriv.ENOTFOUND, scriv.ErrorCode(err))
	})
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	binderOf := func(title string) *scriv.Binder {
		return scriv.NewBinder([]*scriv.Entry{
			{ID: "D-1", Title: "Draft", Kind: scriv.KindDraftFolder, Children: []*scriv.Entry{
				{ID: "A-1", Title: title, Kind: scriv.KindText},
			}},
		})
	}

	t.Run("stable for the same shape", func(t *testing.T) {
		t.Parallel()
		a := sqlite.Fingerprint(binderOf("Scene 1"))
		b := sqlite.Fingerprint(binderOf("Scene 1"))
		assert.Equal(t, a, b)
		assert.Len(t, a, 16)
	})

	t.Run("changes when a title changes", func(t *testing.T) {
		t.Parallel()
		a := sqlite.Fingerprint(binderOf("Scene 1"))
		b := sqlite.Fingerprint(binderOf("Scene 2"))
		assert.NotEqual(t, a, b)
	})
}
