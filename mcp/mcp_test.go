package mcp_test

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/scrivtools/scriv"
	scrivmcp "github.com/scrivtools/scriv/mcp"
	"github.com/scrivtools/scriv/mock"
	"github.com/stretchr/testify/require"
)

const (
	draftID   = "D0000000-0000-0000-0000-000000000001"
	partOneID = "F0000000-0000-0000-0000-000000000001"
	scene1ID  = "A0000000-0000-0000-0000-000000000001"
	scene2ID  = "A0000000-0000-0000-0000-000000000002"
	worldID   = "A0000000-0000-0000-0000-000000000003"
)

// testBinder builds the fixture tree shared across tool tests:
//
//	Draft
//	  Part One        ✓
//	    Scene 1       ✓
//	    Scene 2
//	Research
//	  Worldbuilding
func testBinder() *scriv.Binder {
	return scriv.NewBinder([]*scriv.Entry{
		{
			ID:    draftID,
			Title: "Draft",
			Kind:  scriv.KindDraftFolder,
			Children: []*scriv.Entry{
				{
					ID:               partOneID,
					Title:            "Part One",
					Kind:             scriv.KindFolder,
					IncludeInCompile: true,
					Children: []*scriv.Entry{
						{ID: scene1ID, Title: "Scene 1", Kind: scriv.KindText, IncludeInCompile: true},
						{ID: scene2ID, Title: "Scene 2", Kind: scriv.KindText},
					},
				},
			},
		},
		{
			Title: "Research",
			Kind:  scriv.KindResearchFolder,
			Children: []*scriv.Entry{
				{ID: worldID, Title: "Worldbuilding", Kind: scriv.KindText},
			},
		},
	})
}

// testProject returns a mock project over the fixture binder with the
// accessors wired. Tests fill in the operation fields they exercise.
func testProject() *mock.Project {
	binder := testBinder()
	return &mock.Project{
		NameFn:   func() string { return "Novel" },
		PathFn:   func() string { return "/home/ann/Novel.scriv" },
		BinderFn: func() *scriv.Binder { return binder },
		LockedFn: func() bool { return false },
	}
}

// openSession returns a session with the given project already current.
func openSession(t *testing.T, project scriv.Project) *scrivmcp.Session {
	t.Helper()
	session := scrivmcp.NewSession(func(path string) (scriv.Project, error) {
		return project, nil
	})
	_, err := session.Open("/home/ann/Novel.scriv")
	require.NoError(t, err)
	return session
}

// makeReq builds a tool request with the given arguments.
func makeReq(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// resultText extracts the text content from a tool result.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	content, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return content.Text
}

// errorText asserts the result is a tool error and returns its message.
func errorText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.True(t, result.IsError, "expected a tool error")
	return resultText(t, result)
}
