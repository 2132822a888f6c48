package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/scrivtools/scriv"
)

const noProjectsFound = `No Scrivener projects found in common locations.

Try searching a specific folder:
  find_projects("/path/to/your/writing/folder")

Or open a project directly:
  open_project("/path/to/Your Novel.scriv")`

// FindProjectsTool handles the find_projects MCP tool.
type FindProjectsTool struct {
	finder scriv.Finder
}

// NewFindProjectsTool creates a FindProjectsTool.
func NewFindProjectsTool(finder scriv.Finder) *FindProjectsTool {
	return &FindProjectsTool{finder: finder}
}

// Definition returns the MCP tool definition for find_projects.
func (t *FindProjectsTool) Definition() mcp.Tool {
	return mcp.NewTool("find_projects",
		mcp.WithDescription(
			"Find Scrivener projects on this computer. Searches common locations "+
				"(Documents, Dropbox, iCloud, Desktop) for .scriv folders. "+
				"Use this to discover available projects, then open_project to load one.",
		),
		mcp.WithString("search_path",
			mcp.Description("Specific folder to search instead of the common locations"),
		),
	)
}

// Handle processes the find_projects tool call.
func (t *FindProjectsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	searchPath := req.GetString("search_path", "")

	var (
		infos []*scriv.ProjectInfo
		err   error
	)
	if searchPath != "" {
		// A user-named folder gets one extra level of depth over the
		// default common-location scan.
		infos, err = t.finder.Discover(ctx, []string{expandHome(searchPath)}, 4)
	} else {
		infos, err = t.finder.Discover(ctx, nil, -1)
	}
	if err != nil {
		return errResult(err), nil
	}

	if len(infos) == 0 {
		if searchPath != "" {
			return mcp.NewToolResultText(fmt.Sprintf("No Scrivener projects found in: %s", searchPath)), nil
		}
		return mcp.NewToolResultText(noProjectsFound), nil
	}

	lines := []string{fmt.Sprintf("Found %d Scrivener project(s):\n", len(infos))}
	for _, info := range infos {
		lines = append(lines, fmt.Sprintf("📚 %s", info.Name))
		lines = append(lines, fmt.Sprintf("   Path: %s", info.Path))
	}
	lines = append(lines, "\n"+strings.Repeat("=", 40))
	lines = append(lines, "To open a project, say: 'Open [project name]'")
	lines = append(lines, `Or use: open_project("/path/to/project.scriv")`)

	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

// OpenProjectTool handles the open_project MCP tool.
type OpenProjectTool struct {
	session *Session
}

// NewOpenProjectTool creates an OpenProjectTool.
func NewOpenProjectTool(session *Session) *OpenProjectTool {
	return &OpenProjectTool{session: session}
}

// Definition returns the MCP tool definition for open_project.
func (t *OpenProjectTool) Definition() mcp.Tool {
	return mcp.NewTool("open_project",
		mcp.WithDescription("Open a Scrivener project so the other tools can read it."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to the .scriv folder"),
		),
	)
}

// Handle processes the open_project tool call.
func (t *OpenProjectTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := req.GetString("path", "")
	if path == "" {
		return mcp.NewToolResultError("'path' is required"), nil
	}

	project, err := t.session.Open(expandHome(path))
	if err != nil {
		return errResult(err), nil
	}

	warning := ""
	if project.Locked() {
		warning = "\n⚠️  WARNING: Project appears to be open in Scrivener. Changes may conflict."
	}

	stats := project.Binder().Stats()
	return mcp.NewToolResultText(fmt.Sprintf(
		"Opened project: %s\nPath: %s\nTotal items: %d\nDocuments: %d%s",
		project.Name(), project.Path(), stats.Items, stats.Documents, warning,
	)), nil
}
