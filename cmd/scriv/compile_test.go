package main_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrivtools/scriv"
	main "github.com/scrivtools/scriv/cmd/scriv"
)

func TestCompileCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("compiles the whole draft with headings", func(t *testing.T) {
		t.Parallel()

		project := testProject()
		project.CompileFn = func(_ context.Context, includeTitles bool) (string, error) {
			assert.True(t, includeTitles)
			return "# Part One\n\nThe door was already open.", nil
		}

		deps, stdout, _ := testDeps(project)
		cmd := &main.CompileCmd{}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "# Part One\n\nThe door was already open.\n", stdout.String())
	})

	t.Run("omits headings with no-titles", func(t *testing.T) {
		t.Parallel()

		project := testProject()
		project.CompileFn = func(_ context.Context, includeTitles bool) (string, error) {
			assert.False(t, includeTitles)
			return "The door was already open.", nil
		}

		deps, _, _ := testDeps(project)
		cmd := &main.CompileCmd{NoTitles: true}

		require.NoError(t, cmd.Run(deps))
	})

	t.Run("compiles a single chapter", func(t *testing.T) {
		t.Parallel()

		project := testProject()
		project.CompileEntryFn = func(_ context.Context, entry *scriv.Entry, includeTitles bool) (string, error) {
			assert.Equal(t, partOneID, entry.ID)
			assert.True(t, includeTitles)
			return "# Part One", nil
		}

		deps, stdout, _ := testDeps(project)
		cmd := &main.CompileCmd{Chapter: "Part One"}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "# Part One\n", stdout.String())
	})

	t.Run("reports an unknown chapter", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(testProject())
		cmd := &main.CompileCmd{Chapter: "Epilogue"}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, scriv.ENOTFOUND, scriv.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})
}
