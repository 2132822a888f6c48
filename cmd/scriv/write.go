package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/scrivtools/scriv"
)

// WriteCmd is the "write" subcommand.
type WriteCmd struct {
	Identifier string `arg:"" help:"Document UUID, path, or title"`
	Text       string `xor:"source" help:"New content"`
	File       string `xor:"source" type:"existingfile" help:"Read new content from a file"`
	NoSnapshot bool   `help:"Skip the automatic snapshot"`
}

// Run executes the write command.
func (c *WriteCmd) Run(deps *Dependencies) error {
	if c.Text == "" && c.File == "" {
		fmt.Fprintf(deps.Stderr, "error: provide the new content with --text or --file\n")
		return scriv.Errorf(scriv.EINVALID, "provide the new content with --text or --file")
	}

	content := c.Text
	if c.File != "" {
		data, err := os.ReadFile(c.File)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", err)
			return err
		}
		content = string(data)
	}

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

	oldCount, err := project.WordCount(deps.Ctx, entry, false)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
		return err
	}

	if err := project.WriteContent(deps.Ctx, entry, content, !c.NoSnapshot); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %q: %d words (was %d)\n", entry.Title, len(strings.Fields(content)), oldCount)
	return nil
}
