package main

import (
	"fmt"
	"strings"

	"github.com/scrivtools/scriv"
)

// CountCmd is the "count" subcommand.
type CountCmd struct {
	Folder string `arg:"" optional:"" help:"Folder or document to count (the Draft folder by default)"`
}

// Run executes the count command.
func (c *CountCmd) Run(deps *Dependencies) error {
	project, err := deps.Project()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
		return err
	}

	var target *scriv.Entry
	if c.Folder != "" {
		target, err = project.Binder().Resolve(c.Folder)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
			return err
		}
	} else {
		target = project.Binder().DraftFolder()
		if target == nil {
			fmt.Fprintf(deps.Stderr, "error: project has no Draft folder\n")
			return scriv.Errorf(scriv.ENOTFOUND, "project has no Draft folder")
		}
	}

	// A single document prints just the number.
	if target.IsText() {
		count, err := project.WordCount(deps.Ctx, target, false)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "%d\n", count)
		return nil
	}

	total := 0
	for _, item := range target.Walk() {
		if item == target {
			continue
		}
		indent := strings.Repeat("  ", item.Depth()-target.Depth()-1)
		if item.IsFolder() {
			count, err := project.WordCount(deps.Ctx, item, true)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
				return err
			}
			fmt.Fprintf(deps.Stdout, "%s%s/  %d\n", indent, item.Title, count)
		} else {
			count, err := project.WordCount(deps.Ctx, item, false)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
				return err
			}
			total += count
			fmt.Fprintf(deps.Stdout, "%s%s  %d\n", indent, item.Title, count)
		}
	}

	fmt.Fprintf(deps.Stdout, "\nTotal  %d\n", total)
	return nil
}
