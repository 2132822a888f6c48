package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/scrivtools/scriv"
)

// ListBinderTool handles the list_binder MCP tool.
type ListBinderTool struct {
	session *Session
}

// NewListBinderTool creates a ListBinderTool.
func NewListBinderTool(session *Session) *ListBinderTool {
	return &ListBinderTool{session: session}
}

// Definition returns the MCP tool definition for list_binder.
func (t *ListBinderTool) Definition() mcp.Tool {
	return mcp.NewTool("list_binder",
		mcp.WithDescription(
			"List the binder structure of the project, like Scrivener's sidebar: "+
				"📁 folders, 📄 documents, ✓ marks items included in compile.",
		),
		mcp.WithString("folder_path",
			mcp.Description(`Folder to list (title, path like "Draft/Part One", or ID); omit for the whole binder`),
		),
	)
}

// Handle processes the list_binder tool call.
func (t *ListBinderTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	project, err := t.session.Current()
	if err != nil {
		return errResult(err), nil
	}

	folderPath := req.GetString("folder_path", "")
	if folderPath == "" {
		return mcp.NewToolResultText(scriv.FormatTree(project.Binder().Items)), nil
	}

	entry, err := project.Binder().Resolve(folderPath)
	if err != nil {
		return errResult(err), nil
	}
	return mcp.NewToolResultText(scriv.FormatTree([]*scriv.Entry{entry})), nil
}

// WordCountsTool handles the get_word_counts MCP tool.
type WordCountsTool struct {
	session *Session
}

// NewWordCountsTool creates a WordCountsTool.
func NewWordCountsTool(session *Session) *WordCountsTool {
	return &WordCountsTool{session: session}
}

// Definition returns the MCP tool definition for get_word_counts.
func (t *WordCountsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_word_counts",
		mcp.WithDescription(
			"Get word count statistics, broken down by folder and document. "+
				"Defaults to the whole manuscript (the Draft folder).",
		),
		mcp.WithString("folder_path",
			mcp.Description("Folder to report on; omit for the Draft folder"),
		),
	)
}

// Handle processes the get_word_counts tool call.
func (t *WordCountsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	project, err := t.session.Current()
	if err != nil {
		return errResult(err), nil
	}

	var root *scriv.Entry
	if folderPath := req.GetString("folder_path", ""); folderPath != "" {
		root, err = project.Binder().Resolve(folderPath)
		if err != nil {
			return errResult(err), nil
		}
	} else {
		root = project.Binder().DraftFolder()
		if root == nil {
			return mcp.NewToolResultText("No Draft folder found in project."), nil
		}
	}

	lines := []string{fmt.Sprintf("Word counts for: %s\n", root.Title)}
	total := 0

	for _, item := range root.Walk() {
		if item == root {
			continue
		}
		indent := strings.Repeat("  ", item.Depth()-root.Depth()-1)

		switch {
		case item.IsFolder():
			count, err := project.WordCount(ctx, item, true)
			if err != nil {
				return errResult(err), nil
			}
			lines = append(lines, fmt.Sprintf("%s📁 %s: %s words", indent, item.Title, commas(count)))
		case item.IsText():
			count, err := project.WordCount(ctx, item, false)
			if err != nil {
				return errResult(err), nil
			}
			lines = append(lines, fmt.Sprintf("%s  📄 %s: %s words", indent, item.Title, commas(count)))
			total += count
		}
	}

	lines = append(lines, "\n"+strings.Repeat("=", 40))
	lines = append(lines, fmt.Sprintf("Total: %s words", commas(total)))

	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}
