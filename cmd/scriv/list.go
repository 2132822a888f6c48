package main

import (
	"fmt"

	"github.com/scrivtools/scriv"
)

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Folder string `arg:"" optional:"" help:"Folder UUID, path, or title (whole binder by default)"`
}

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	project, err := deps.Project()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
		return err
	}

	entries := project.Binder().Items
	if c.Folder != "" {
		entry, err := project.Binder().Resolve(c.Folder)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
			return err
		}
		entries = []*scriv.Entry{entry}
	}

	fmt.Fprintln(deps.Stdout, scriv.FormatTree(entries))
	return nil
}
