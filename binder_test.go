package scriv_test

import (
	"testing"

	"github.com/scrivtools/scriv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBinder builds a small project tree:
//
//	Draft/
//	  Chapter One/
//	    Scene 1
//	    Scene 2
//	  Chapter Two/
//	    Scene 3
//	Research/
//	  Worldbuilding
//	Trash/
func testBinder(t *testing.T) *scriv.Binder {
	t.Helper()

	return scriv.NewBinder([]*scriv.Entry{
		{
			ID: "DRAFT", Title: "Draft", Kind: scriv.KindDraftFolder,
			Children: []*scriv.Entry{
				{
					ID: "CH-1", Title: "Chapter One", Kind: scriv.KindFolder, IncludeInCompile: true,
					Children: []*scriv.Entry{
						{ID: "SC-1", Title: "Scene 1", Kind: scriv.KindText, IncludeInCompile: true},
						{ID: "SC-2", Title: "Scene 2", Kind: scriv.KindText},
					},
				},
				{
					ID: "CH-2", Title: "Chapter Two", Kind: scriv.KindFolder,
					Children: []*scriv.Entry{
						{ID: "SC-3", Title: "Scene 3", Kind: scriv.KindText, IncludeInCompile: true},
					},
				},
			},
		},
		{
			ID: "RSRCH", Title: "Research", Kind: scriv.KindResearchFolder,
			Children: []*scriv.Entry{
				{ID: "WB-1", Title: "Worldbuilding", Kind: scriv.KindText},
			},
		},
		{ID: "TRASH", Title: "Trash", Kind: scriv.KindTrashFolder},
	})
}

func TestNewBinder(t *testing.T) {
	t.Parallel()

	t.Run("links parents across the forest", func(t *testing.T) {
		t.Parallel()

		b := testBinder(t)

		scene := b.FindByID("SC-1")
		require.NotNil(t, scene)
		require.NotNil(t, scene.Parent())
		assert.Equal(t, "Chapter One", scene.Parent().Title)
		assert.Nil(t, b.Items[1].Parent())
	})

	t.Run("first entry wins on duplicate IDs", func(t *testing.T) {
		t.Parallel()

		b := scriv.NewBinder([]*scriv.Entry{
			{ID: "DUP-1", Title: "First", Kind: scriv.KindText},
			{ID: "DUP-1", Title: "Second", Kind: scriv.KindText},
		})

		found := b.FindByID("DUP-1")
		require.NotNil(t, found)
		assert.Equal(t, "First", found.Title)
		assert.Len(t, b.All(), 2, "both entries stay in the tree")
	})

	t.Run("entries without an ID are not indexed", func(t *testing.T) {
		t.Parallel()

		b := scriv.NewBinder([]*scriv.Entry{
			{Title: "Anonymous", Kind: scriv.KindText},
		})

		assert.Nil(t, b.FindByID(""))
		assert.Len(t, b.All(), 1)
	})
}

func TestBinder_All(t *testing.T) {
	t.Parallel()

	b := testBinder(t)

	var titles []string
	for _, e := range b.All() {
		titles = append(titles, e.Title)
	}

	assert.Equal(t, []string{
		"Draft", "Chapter One", "Scene 1", "Scene 2", "Chapter Two", "Scene 3",
		"Research", "Worldbuilding", "Trash",
	}, titles)
}

func TestBinder_Stats(t *testing.T) {
	t.Parallel()

	b := testBinder(t)

	stats := b.Stats()

	assert.Equal(t, 9, stats.Items)
	assert.Equal(t, 4, stats.Documents)
}

func TestBinder_FindByID(t *testing.T) {
	t.Parallel()

	b := testBinder(t)

	t.Run("finds by exact ID", func(t *testing.T) {
		t.Parallel()

		found := b.FindByID("SC-3")
		require.NotNil(t, found)
		assert.Equal(t, "Scene 3", found.Title)
	})

	t.Run("retries lowercase IDs uppercased", func(t *testing.T) {
		t.Parallel()

		found := b.FindByID("sc-3")
		require.NotNil(t, found)
		assert.Equal(t, "Scene 3", found.Title)
	})

	t.Run("returns nil for unknown ID", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, b.FindByID("MISSING"))
	})
}

func TestBinder_FindByPath(t *testing.T) {
	t.Parallel()

	b := testBinder(t)

	found := b.FindByPath("Draft/Chapter Two/Scene 3")
	require.NotNil(t, found)
	assert.Equal(t, "SC-3", found.ID)

	assert.Nil(t, b.FindByPath("Draft/Chapter Two/Scene 99"))
	assert.Nil(t, b.FindByPath("Scene 3"), "partial paths do not match")
}

func TestBinder_FindByTitle(t *testing.T) {
	t.Parallel()

	b := testBinder(t)

	t.Run("exact match is case-sensitive", func(t *testing.T) {
		t.Parallel()

		matches := b.FindByTitle("Scene 1", true)
		require.Len(t, matches, 1)
		assert.Equal(t, "SC-1", matches[0].ID)

		assert.Empty(t, b.FindByTitle("scene 1", true))
	})

	t.Run("substring match is case-insensitive and in binder order", func(t *testing.T) {
		t.Parallel()

		matches := b.FindByTitle("scene", false)
		require.Len(t, matches, 3)
		assert.Equal(t, "SC-1", matches[0].ID)
		assert.Equal(t, "SC-2", matches[1].ID)
		assert.Equal(t, "SC-3", matches[2].ID)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, b.FindByTitle("Epilogue", false))
	})
}

func TestBinder_DraftFolder(t *testing.T) {
	t.Parallel()

	t.Run("returns the draft folder", func(t *testing.T) {
		t.Parallel()

		b := testBinder(t)

		draft := b.DraftFolder()
		require.NotNil(t, draft)
		assert.Equal(t, "DRAFT", draft.ID)
	})

	t.Run("returns nil when the project has none", func(t *testing.T) {
		t.Parallel()

		b := scriv.NewBinder([]*scriv.Entry{
			{ID: "RSRCH", Title: "Research", Kind: scriv.KindResearchFolder},
		})

		assert.Nil(t, b.DraftFolder())
	})
}

func TestBinder_Resolve(t *testing.T) {
	t.Parallel()

	b := testBinder(t)

	t.Run("resolves by ID before anything else", func(t *testing.T) {
		t.Parallel()

		e, err := b.Resolve("SC-2")
		require.NoError(t, err)
		assert.Equal(t, "Scene 2", e.Title)
	})

	t.Run("resolves by exact path", func(t *testing.T) {
		t.Parallel()

		e, err := b.Resolve("Draft/Chapter One/Scene 2")
		require.NoError(t, err)
		assert.Equal(t, "SC-2", e.ID)
	})

	t.Run("resolves by unique exact title", func(t *testing.T) {
		t.Parallel()

		e, err := b.Resolve("Worldbuilding")
		require.NoError(t, err)
		assert.Equal(t, "WB-1", e.ID)
	})

	t.Run("resolves by unique substring title", func(t *testing.T) {
		t.Parallel()

		e, err := b.Resolve("world")
		require.NoError(t, err)
		assert.Equal(t, "WB-1", e.ID)
	})

	t.Run("ambiguous title lists candidate paths", func(t *testing.T) {
		t.Parallel()

		_, err := b.Resolve("Scene")
		require.Error(t, err)
		assert.Equal(t, scriv.EAMBIGUOUS, scriv.ErrorCode(err))
		assert.Contains(t, scriv.ErrorMessage(err), "Draft/Chapter One/Scene 1")
		assert.Contains(t, scriv.ErrorMessage(err), "Draft/Chapter Two/Scene 3")
	})

	t.Run("unknown identifier returns ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		_, err := b.Resolve("Epilogue")
		require.Error(t, err)
		assert.Equal(t, scriv.ENOTFOUND, scriv.ErrorCode(err))
	})

	t.Run("empty identifier returns EINVALID", func(t *testing.T) {
		t.Parallel()

		_, err := b.Resolve("")
		require.Error(t, err)
		assert.Equal(t, scriv.EINVALID, scriv.ErrorCode(err))
	})
}
