package main

import (
	"fmt"

	"github.com/scrivtools/scriv"
)

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query         string `arg:"" help:"Regular expression to search for"`
	CaseSensitive bool   `help:"Match case exactly"`
}

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	project, err := deps.Project()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
		return err
	}

	matches, err := project.Search(deps.Ctx, c.Query, c.CaseSensitive)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
		return err
	}

	if len(matches) == 0 {
		fmt.Fprintf(deps.Stdout, "No matches for %q\n", c.Query)
		return nil
	}

	for i, match := range matches {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintln(deps.Stdout, match.Entry.Path())
		for _, line := range match.Lines {
			fmt.Fprintf(deps.Stdout, "  %s\n", line)
		}
	}

	return nil
}
