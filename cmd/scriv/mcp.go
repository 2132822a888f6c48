package main

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/scrivtools/scriv"
	"github.com/scrivtools/scriv/mcp"
)

// MCPCmd is the "mcp" subcommand.
type MCPCmd struct {
	HTTP bool   `help:"Serve over streamable HTTP instead of stdio"`
	Host string `default:"127.0.0.1" help:"Host to bind when serving HTTP"`
	Port int    `default:"8081" help:"Port to bind when serving HTTP"`
}

// Run executes the mcp command.
func (c *MCPCmd) Run(deps *Dependencies) error {
	session := mcp.NewSession(deps.Open)
	if deps.ProjectPath != "" {
		if _, err := session.Open(deps.ProjectPath); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
			return err
		}
	}

	s := mcp.NewServer(session, deps.Finder, Version)

	if c.HTTP {
		addr := fmt.Sprintf("%s:%d", c.Host, c.Port)
		fmt.Fprintf(deps.Stderr, "Serving MCP at http://%s/mcp\n", addr)
		return server.NewStreamableHTTPServer(s).Start(addr)
	}

	// Stdout carries the protocol in stdio mode, so nothing else may be
	// printed there.
	return server.ServeStdio(s)
}
