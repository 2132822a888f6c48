// Package mcp exposes a writing project to AI assistants over the Model
// Context Protocol.
//
// Every tool follows the same pattern: dependencies injected through a
// constructor, Definition() describing the tool schema, and Handle()
// serving one call. Tools are read-only; writes go through the HTTP API
// or the CLI. NewServer registers the tools on a mark3labs/mcp-go server
// and the caller picks the transport (stdio or streamable HTTP).
package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/scrivtools/scriv"
)

// NewServer creates the MCP server with every tool registered. The
// session carries the project state across tool calls; the finder backs
// project discovery.
func NewServer(session *Session, finder scriv.Finder, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"scriv",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	find := NewFindProjectsTool(finder)
	s.AddTool(find.Definition(), find.Handle)

	open := NewOpenProjectTool(session)
	s.AddTool(open.Definition(), open.Handle)

	list := NewListBinderTool(session)
	s.AddTool(list.Definition(), list.Handle)

	read := NewReadDocumentTool(session)
	s.AddTool(read.Definition(), read.Handle)

	search := NewSearchTool(session)
	s.AddTool(search.Definition(), search.Handle)

	counts := NewWordCountsTool(session)
	s.AddTool(counts.Definition(), counts.Handle)

	manuscript := NewManuscriptTool(session)
	s.AddTool(manuscript.Definition(), manuscript.Handle)

	synopsis := NewSynopsisTool(session)
	s.AddTool(synopsis.Definition(), synopsis.Handle)

	notes := NewNotesTool(session)
	s.AddTool(notes.Definition(), notes.Handle)

	return s
}

const instructions = `You have access to scriv, a server for reading Scrivener writing
projects.

Start by loading a project:
- find_projects locates .scriv folders in common writing locations.
- open_project loads one. The SCRIVENER_PROJECT environment variable can
  preload a project instead.

Then explore and read:
- list_binder shows the folder and document tree.
- read_document, get_synopsis and get_notes read one document by title,
  path or ID.
- read_manuscript compiles the Draft folder, or a single chapter, in
  reading order.
- search_project scans every document for a pattern; get_word_counts
  reports totals by folder.

All tools are read-only. Nothing here modifies the project.`
