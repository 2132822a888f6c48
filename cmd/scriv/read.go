package main

import (
	"fmt"

	"github.com/scrivtools/scriv"
)

// ReadCmd is the "read" subcommand.
type ReadCmd struct {
	Identifier string `arg:"" help:"Document UUID, path, or title"`
}

// Run executes the read command.
func (c *ReadCmd) Run(deps *Dependencies) error {
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

	if entry.IsFolder() {
		fmt.Fprintf(deps.Stderr, "error: %q is a folder. Use 'scriv list %s' to see its contents.\n", entry.Title, entry.Title)
		return scriv.Errorf(scriv.EINVALIDTARGET, "%q is a folder", entry.Title)
	}

	content, err := project.ReadContent(deps.Ctx, entry)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, content)
	return nil
}
