package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// ManuscriptTool handles the read_manuscript MCP tool.
type ManuscriptTool struct {
	session *Session
}

// NewManuscriptTool creates a ManuscriptTool.
func NewManuscriptTool(session *Session) *ManuscriptTool {
	return &ManuscriptTool{session: session}
}

// Definition returns the MCP tool definition for read_manuscript.
func (t *ManuscriptTool) Definition() mcp.Tool {
	return mcp.NewTool("read_manuscript",
		mcp.WithDescription(
			"Read the full manuscript: every document marked Include in Compile "+
				"under the Draft folder, in binder order. Pass a chapter to read "+
				"just that part, whether or not it is marked for compile.",
		),
		mcp.WithBoolean("include_titles",
			mcp.Description("Include document and folder titles as headings (default true)"),
		),
		mcp.WithString("chapter",
			mcp.Description("Chapter title, path, or ID to read on its own"),
		),
	)
}

// Handle processes the read_manuscript tool call.
func (t *ManuscriptTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	project, err := t.session.Current()
	if err != nil {
		return errResult(err), nil
	}

	includeTitles := boolArg(req, "include_titles", true)

	if chapter := req.GetString("chapter", ""); chapter != "" {
		entry, err := project.Binder().Resolve(chapter)
		if err != nil {
			return errResult(err), nil
		}
		text, err := project.CompileEntry(ctx, entry, includeTitles)
		if err != nil {
			return errResult(err), nil
		}
		return mcp.NewToolResultText(text), nil
	}

	text, err := project.Compile(ctx, includeTitles)
	if err != nil {
		return errResult(err), nil
	}
	return mcp.NewToolResultText(text), nil
}

// SearchTool handles the search_project MCP tool.
type SearchTool struct {
	session *Session
}

// NewSearchTool creates a SearchTool.
func NewSearchTool(session *Session) *SearchTool {
	return &SearchTool{session: session}
}

// Definition returns the MCP tool definition for search_project.
func (t *SearchTool) Definition() mcp.Tool {
	return mcp.NewTool("search_project",
		mcp.WithDescription(
			"Search for text across all documents in the project. The query is "+
				"a regular expression; plain words work as-is.",
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Text or regex pattern to search for"),
		),
		mcp.WithBoolean("case_sensitive",
			mcp.Description("Match case (default false)"),
		),
	)
}

// Handle processes the search_project tool call.
func (t *SearchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	if query == "" {
		return mcp.NewToolResultError("'query' is required"), nil
	}

	project, err := t.session.Current()
	if err != nil {
		return errResult(err), nil
	}

	matches, err := project.Search(ctx, query, boolArg(req, "case_sensitive", false))
	if err != nil {
		return errResult(err), nil
	}
	if len(matches) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No matches found for: %s", query)), nil
	}

	lines := []string{fmt.Sprintf("Found %d document(s) matching '%s':\n", len(matches), query)}
	for _, match := range matches {
		lines = append(lines, fmt.Sprintf("\n📄 %s", match.Entry.Path()))

		shown := match.Lines
		if len(shown) > 3 {
			shown = shown[:3]
		}
		for _, line := range shown {
			lines = append(lines, fmt.Sprintf("   • %s", truncateLine(line, 100)))
		}
		if extra := len(match.Lines) - 3; extra > 0 {
			lines = append(lines, fmt.Sprintf("   ... and %d more matches", extra))
		}
	}

	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}
