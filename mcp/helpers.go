package mcp

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/scrivtools/scriv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var english = message.NewPrinter(language.English)

// commas renders n with thousands separators, as Scrivener does in its
// own word count displays.
func commas(n int) string {
	return english.Sprintf("%d", n)
}

// boolArg extracts a boolean argument from a tool request, returning
// defaultVal if the key is missing or not a boolean.
func boolArg(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}

// errResult converts an application error into a tool error result. MCP
// tool failures are results, not protocol errors, so the assistant can
// read them and recover.
func errResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(scriv.ErrorMessage(err))
}

// expandHome resolves a leading ~ to the user's home directory. Assistants
// frequently echo back paths the way users typed them.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// truncateLine caps a line at limit runes, marking the cut with an
// ellipsis.
func truncateLine(line string, limit int) string {
	runes := []rune(line)
	if len(runes) <= limit {
		return line
	}
	return string(runes[:limit]) + "..."
}
