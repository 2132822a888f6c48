package main

import (
	"fmt"

	"github.com/scrivtools/scriv"
	"github.com/scrivtools/scriv/fs"
)

// ProjectsCmd is the "projects" subcommand.
type ProjectsCmd struct {
	Path   string `help:"Directory to search instead of the common locations"`
	Recent bool   `help:"List recently opened projects instead of searching"`
}

// Run executes the projects command.
func (c *ProjectsCmd) Run(deps *Dependencies) error {
	if c.Recent {
		return c.runRecent(deps)
	}

	var roots []string
	maxDepth := -1
	if c.Path != "" {
		// A directory the user names gets one extra level of depth over
		// the default common-location scan.
		roots = []string{c.Path}
		maxDepth = fs.DefaultMaxDepth + 1
	}

	infos, err := deps.Finder.Discover(deps.Ctx, roots, maxDepth)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
		return err
	}

	if len(infos) == 0 {
		if c.Path != "" {
			fmt.Fprintf(deps.Stdout, "No Scrivener projects found in %s\n", c.Path)
		} else {
			fmt.Fprintln(deps.Stdout, "No Scrivener projects found. Use --path to search a specific directory.")
		}
		return nil
	}

	for _, info := range infos {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", info.Name, info.Path)
	}

	return nil
}

func (c *ProjectsCmd) runRecent(deps *Dependencies) error {
	entries, err := deps.Catalog.Recent(deps.Ctx, 10)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No recently opened projects.")
		return nil
	}

	for _, entry := range entries {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", entry.LastOpened.Format("2006-01-02 15:04"), entry.Name, entry.Path)
	}

	return nil
}
