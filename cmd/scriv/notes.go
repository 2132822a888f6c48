package main

import (
	"fmt"

	"github.com/scrivtools/scriv"
)

// NotesCmd is the "notes" subcommand.
type NotesCmd struct {
	Identifier string `arg:"" help:"Document UUID, path, or title"`
	Set        string `help:"Replace the notes with this text"`
	NoSnapshot bool   `help:"Skip the automatic snapshot when replacing"`
}

// Run executes the notes command.
func (c *NotesCmd) Run(deps *Dependencies) error {
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
		if err := project.WriteNotes(deps.Ctx, entry, c.Set, !c.NoSnapshot); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Notes updated for %q\n", entry.Title)
		return nil
	}

	notes, err := project.ReadNotes(deps.Ctx, entry)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
		return err
	}

	if notes != "" {
		fmt.Fprintln(deps.Stdout, notes)
	}
	return nil
}
