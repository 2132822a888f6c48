package main

import (
	"fmt"
	"os"

	"github.com/scrivtools/scriv"
)

// CreateCmd is the "create" subcommand.
type CreateCmd struct {
	Title       string `arg:"" help:"Title of the new document"`
	Parent      string `required:"" help:"Folder UUID, path, or title to create under"`
	ContentFile string `type:"existingfile" help:"File holding the initial content"`
	Synopsis    string `help:"Initial synopsis"`
	NoCompile   bool   `help:"Exclude the document from compile"`
	Position    int    `default:"-1" help:"Index among the parent's children (appended by default)"`
}

// Run executes the create command.
func (c *CreateCmd) Run(deps *Dependencies) error {
	project, err := deps.Project()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
		return err
	}

	parent, err := project.Binder().Resolve(c.Parent)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
		return err
	}

	params := scriv.CreateDocumentParams{
		Title:    c.Title,
		Parent:   parent,
		Synopsis: c.Synopsis,
	}
	if c.ContentFile != "" {
		data, err := os.ReadFile(c.ContentFile)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", err)
			return err
		}
		params.Content = string(data)
	}
	if c.NoCompile {
		include := false
		params.IncludeInCompile = &include
	}
	if c.Position >= 0 {
		params.Position = &c.Position
	}

	entry, err := project.CreateDocument(deps.Ctx, params)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Created %q at %s\n%s\n", entry.Title, entry.Path(), entry.ID)
	return nil
}
