package mcp_test

import (
	"testing"

	"github.com/scrivtools/scriv"
	scrivmcp "github.com/scrivtools/scriv/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession(t *testing.T) {
	t.Run("open makes the project current", func(t *testing.T) {
		project := testProject()
		session := scrivmcp.NewSession(func(path string) (scriv.Project, error) {
			assert.Equal(t, "/home/ann/Novel.scriv", path)
			return project, nil
		})

		opened, err := session.Open("/home/ann/Novel.scriv")
		require.NoError(t, err)
		assert.Same(t, project, opened)

		current, err := session.Current()
		require.NoError(t, err)
		assert.Same(t, project, current)
	})

	t.Run("falls back to the environment once", func(t *testing.T) {
		t.Setenv(scrivmcp.EnvProject, "/env/Novel.scriv")

		project := testProject()
		opens := 0
		session := scrivmcp.NewSession(func(path string) (scriv.Project, error) {
			opens++
			assert.Equal(t, "/env/Novel.scriv", path)
			return project, nil
		})

		current, err := session.Current()
		require.NoError(t, err)
		assert.Same(t, project, current)

		_, err = session.Current()
		require.NoError(t, err)
		assert.Equal(t, 1, opens, "environment project should be opened once")
	})

	t.Run("errors without a project or environment", func(t *testing.T) {
		t.Setenv(scrivmcp.EnvProject, "")

		session := scrivmcp.NewSession(func(path string) (scriv.Project, error) {
			t.Fatal("opener should not be called")
			return nil, nil
		})

		_, err := session.Current()
		assert.Equal(t, scriv.EINVALID, scriv.ErrorCode(err))
		assert.Contains(t, scriv.ErrorMessage(err), "open_project")
	})

	t.Run("open failure leaves the session empty", func(t *testing.T) {
		t.Setenv(scrivmcp.EnvProject, "")

		session := scrivmcp.NewSession(func(path string) (scriv.Project, error) {
			return nil, scriv.Errorf(scriv.ENOTFOUND, "project not found: %s", path)
		})

		_, err := session.Open("/gone/Lost.scriv")
		assert.Equal(t, scriv.ENOTFOUND, scriv.ErrorCode(err))

		_, err = session.Current()
		assert.Equal(t, scriv.EINVALID, scriv.ErrorCode(err))
	})

	t.Run("reopening replaces the project", func(t *testing.T) {
		first := testProject()
		second := testProject()
		projects := map[string]scriv.Project{
			"/home/ann/First.scriv":  first,
			"/home/ann/Second.scriv": second,
		}
		session := scrivmcp.NewSession(func(path string) (scriv.Project, error) {
			return projects[path], nil
		})

		_, err := session.Open("/home/ann/First.scriv")
		require.NoError(t, err)
		_, err = session.Open("/home/ann/Second.scriv")
		require.NoError(t, err)

		current, err := session.Current()
		require.NoError(t, err)
		assert.Same(t, second, current)
	})
}
