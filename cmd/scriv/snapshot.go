package main

import (
	"fmt"

	"github.com/scrivtools/scriv"
)

// SnapshotCmd is the "snapshot" subcommand.
type SnapshotCmd struct {
	Identifier string `arg:"" help:"Document UUID, path, or title"`
	Label      string `help:"Label for the snapshot file name"`
}

// Run executes the snapshot command.
func (c *SnapshotCmd) Run(deps *Dependencies) error {
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

	name, err := project.CreateSnapshot(deps.Ctx, entry, c.Label)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Created snapshot %s for %q\n", name, entry.Title)
	return nil
}
