package main

import (
	"fmt"

	"github.com/scrivtools/scriv"
)

// CompileCmd is the "compile" subcommand.
type CompileCmd struct {
	Chapter  string `help:"Compile a single folder instead of the whole draft"`
	NoTitles bool   `help:"Omit folder and document headings"`
}

// Run executes the compile command.
func (c *CompileCmd) Run(deps *Dependencies) error {
	project, err := deps.Project()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
		return err
	}

	includeTitles := !c.NoTitles

	var text string
	if c.Chapter != "" {
		entry, err := project.Binder().Resolve(c.Chapter)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
			return err
		}
		text, err = project.CompileEntry(deps.Ctx, entry, includeTitles)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
			return err
		}
	} else {
		text, err = project.Compile(deps.Ctx, includeTitles)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintln(deps.Stdout, text)
	return nil
}
