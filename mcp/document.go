package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/scrivtools/scriv"
)

// ReadDocumentTool handles the read_document MCP tool.
type ReadDocumentTool struct {
	session *Session
}

// NewReadDocumentTool creates a ReadDocumentTool.
func NewReadDocumentTool(session *Session) *ReadDocumentTool {
	return &ReadDocumentTool{session: session}
}

// Definition returns the MCP tool definition for read_document.
func (t *ReadDocumentTool) Definition() mcp.Tool {
	return mcp.NewTool("read_document",
		mcp.WithDescription(
			"Read the content of a document. Folders return a summary of their "+
				"contents instead of text.",
		),
		mcp.WithString("identifier",
			mcp.Required(),
			mcp.Description(`Document title (e.g. "Chapter 1"), path (e.g. "Draft/Part One/Chapter 1"), or ID`),
		),
	)
}

// Handle processes the read_document tool call.
func (t *ReadDocumentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	identifier := req.GetString("identifier", "")
	if identifier == "" {
		return mcp.NewToolResultError("'identifier' is required"), nil
	}

	project, err := t.session.Current()
	if err != nil {
		return errResult(err), nil
	}
	entry, err := project.Binder().Resolve(identifier)
	if err != nil {
		return errResult(err), nil
	}

	if entry.IsFolder() {
		items := len(entry.Walk()) - 1
		documents := 0
		for _, e := range entry.Walk() {
			if e.IsText() {
				documents++
			}
		}
		words, err := project.WordCount(ctx, entry, true)
		if err != nil {
			return errResult(err), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf(
			"📁 %s\nPath: %s\nContains: %d items (%d documents)\nTotal words: %s\n\nContents:\n%s",
			entry.Title, entry.Path(), items, documents, commas(words),
			scriv.FormatTree([]*scriv.Entry{entry}),
		)), nil
	}

	content, err := project.ReadContent(ctx, entry)
	if err != nil {
		return errResult(err), nil
	}
	words, err := project.WordCount(ctx, entry, false)
	if err != nil {
		return errResult(err), nil
	}

	include := "No"
	if entry.IncludeInCompile {
		include = "Yes"
	}
	return mcp.NewToolResultText(fmt.Sprintf(
		"📄 %s\nPath: %s\nWords: %s\nInclude in Compile: %s\n\n---\n\n%s",
		entry.Title, entry.Path(), commas(words), include, content,
	)), nil
}

// SynopsisTool handles the get_synopsis MCP tool.
type SynopsisTool struct {
	session *Session
}

// NewSynopsisTool creates a SynopsisTool.
func NewSynopsisTool(session *Session) *SynopsisTool {
	return &SynopsisTool{session: session}
}

// Definition returns the MCP tool definition for get_synopsis.
func (t *SynopsisTool) Definition() mcp.Tool {
	return mcp.NewTool("get_synopsis",
		mcp.WithDescription(
			"Get the synopsis of a document: the short summary shown on index "+
				"cards in Scrivener's corkboard view.",
		),
		mcp.WithString("identifier",
			mcp.Required(),
			mcp.Description("Document title, path, or ID"),
		),
	)
}

// Handle processes the get_synopsis tool call.
func (t *SynopsisTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	identifier := req.GetString("identifier", "")
	if identifier == "" {
		return mcp.NewToolResultError("'identifier' is required"), nil
	}

	project, err := t.session.Current()
	if err != nil {
		return errResult(err), nil
	}
	entry, err := project.Binder().Resolve(identifier)
	if err != nil {
		return errResult(err), nil
	}

	synopsis, err := project.ReadSynopsis(ctx, entry)
	if err != nil {
		return errResult(err), nil
	}

	if synopsis == "" {
		return mcp.NewToolResultText(fmt.Sprintf(
			"📄 %s\nPath: %s\n\nNo synopsis set for this document.",
			entry.Title, entry.Path(),
		)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf(
		"📄 %s\nPath: %s\n\nSynopsis:\n%s",
		entry.Title, entry.Path(), synopsis,
	)), nil
}

// NotesTool handles the get_notes MCP tool.
type NotesTool struct {
	session *Session
}

// NewNotesTool creates a NotesTool.
func NewNotesTool(session *Session) *NotesTool {
	return &NotesTool{session: session}
}

// Definition returns the MCP tool definition for get_notes.
func (t *NotesTool) Definition() mcp.Tool {
	return mcp.NewTool("get_notes",
		mcp.WithDescription(
			"Get the document notes from Scrivener's inspector panel: author "+
				"notes, research, reminders.",
		),
		mcp.WithString("identifier",
			mcp.Required(),
			mcp.Description("Document title, path, or ID"),
		),
	)
}

// Handle processes the get_notes tool call.
func (t *NotesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	identifier := req.GetString("identifier", "")
	if identifier == "" {
		return mcp.NewToolResultError("'identifier' is required"), nil
	}

	project, err := t.session.Current()
	if err != nil {
		return errResult(err), nil
	}
	entry, err := project.Binder().Resolve(identifier)
	if err != nil {
		return errResult(err), nil
	}

	notes, err := project.ReadNotes(ctx, entry)
	if err != nil {
		return errResult(err), nil
	}

	if notes == "" {
		return mcp.NewToolResultText(fmt.Sprintf(
			"📄 %s\nPath: %s\n\nNo notes for this document.",
			entry.Title, entry.Path(),
		)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf(
		"📄 %s\nPath: %s\n\nNotes:\n%s",
		entry.Title, entry.Path(), notes,
	)), nil
}
