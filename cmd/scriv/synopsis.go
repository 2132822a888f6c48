package main

import (
	"fmt"

	"github.com/scrivtools/scriv"
)

// SynopsisCmd is the "synopsis" subcommand.
type SynopsisCmd struct {
	Identifier string `arg:"" help:"Document UUID, path, or title"`
	Set        string `help:"Replace the synopsis with this text"`
}

// Run executes the synopsis command.
func (c *SynopsisCmd) Run(deps *Dependencies) error {
	project, err := deps.Project()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
		return err
	}

	entry, err := project.Binder().Resolve(c.Identifier)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
		return err
	}

	if c.Set != "" {
		if err := project.WriteSynopsis(deps.Ctx, entry, c.Set); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Synopsis updated for %q\n", entry.Title)
		return nil
	}

	synopsis, err := project.ReadSynopsis(deps.Ctx, entry)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
		return err
	}

	if synopsis != "" {
		fmt.Fprintln(deps.Stdout, synopsis)
	}
	return nil
}
