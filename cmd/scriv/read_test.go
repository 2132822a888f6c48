package main_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrivtools/scriv"
	main "github.com/scrivtools/scriv/cmd/scriv"
)

func TestReadCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the document text", func(t *testing.T) {
		t.Parallel()

		project := testProject()
		project.ReadContentFn = func(_ context.Context, entry *scriv.Entry) (string, error) {
			assert.Equal(t, scene1ID, entry.ID)
			return "The door was already open.", nil
		}

		deps, stdout, _ := testDeps(project)
		cmd := &main.ReadCmd{Identifier: "Scene 1"}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "The door was already open.\n", stdout.String())
	})

	t.Run("points folders at the list command", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(testProject())
		cmd := &main.ReadCmd{Identifier: "Part One"}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, scriv.EINVALIDTARGET, scriv.ErrorCode(err))
		assert.Contains(t, stderr.String(), "scriv list")
	})

	t.Run("reports ambiguous identifiers", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(testProject())
		cmd := &main.ReadCmd{Identifier: "Scene"}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, scriv.EAMBIGUOUS, scriv.ErrorCode(err))
		assert.Contains(t, stderr.String(), "matches multiple entries")
	})
}
