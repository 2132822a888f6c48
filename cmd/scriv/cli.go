package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/scrivtools/scriv"
	"github.com/scrivtools/scriv/config"
)

// ChatterFactory builds a chat provider for the given configuration. A
// fresh provider per call means configuration changes take effect
// immediately.
type ChatterFactory func(cfg config.Config) (scriv.Chatter, error)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Open       scriv.ProjectOpener
	Finder     scriv.Finder
	Catalog    scriv.Catalog
	Chatter    ChatterFactory
	Config     config.Config
	ConfigPath string

	// ProjectPath is the project named on the command line or through
	// SCRIVENER_PROJECT. Empty means fall back to the last opened project.
	ProjectPath string
}

// Project opens the selected project: the --project flag, the
// SCRIVENER_PROJECT environment variable, or the last project opened
// through the web interface.
func (d *Dependencies) Project() (scriv.Project, error) {
	path := d.ProjectPath
	if path == "" {
		path = d.Config.LastProject
	}
	if path == "" {
		return nil, scriv.Errorf(scriv.EINVALID, "no project selected: pass --project or set SCRIVENER_PROJECT")
	}
	return d.Open(path)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Project string `short:"P" env:"SCRIVENER_PROJECT" placeholder:"PATH" help:"Path to the .scriv project folder"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Projects ProjectsCmd `cmd:"" help:"Find Scrivener projects"`
	List     ListCmd     `cmd:"" help:"Show the binder tree"`
	Read     ReadCmd     `cmd:"" help:"Print a document's text"`
	Search   SearchCmd   `cmd:"" help:"Search document text"`
	Count    CountCmd    `cmd:"" help:"Show word counts"`
	Compile  CompileCmd  `cmd:"" help:"Assemble the draft into one text"`
	Synopsis SynopsisCmd `cmd:"" help:"Show or replace a document's synopsis"`
	Notes    NotesCmd    `cmd:"" help:"Show or replace a document's notes"`
	Write    WriteCmd    `cmd:"" help:"Replace a document's text"`
	Create   CreateCmd   `cmd:"" help:"Create a new document"`
	Snapshot SnapshotCmd `cmd:"" help:"Snapshot a document's current text"`
	Chat     ChatCmd     `cmd:"" help:"Ask the writing assistant"`
	Config   ConfigCmd   `cmd:"" help:"Show or change chat provider settings"`
	MCP      MCPCmd      `cmd:"" name:"mcp" help:"Serve tools over the Model Context Protocol"`
	Web      WebCmd      `cmd:"" help:"Serve the JSON web API"`
	Version  VersionCmd  `cmd:"" help:"Print the version"`
}

// VersionCmd is the "version" subcommand.
type VersionCmd struct{}

// Run executes the version command.
func (c *VersionCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "scriv %s\n", Version)
	return nil
}
