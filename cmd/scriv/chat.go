package main

import (
	"fmt"

	"github.com/scrivtools/scriv"
)

// ChatCmd is the "chat" subcommand.
type ChatCmd struct {
	Message   string `arg:"" help:"Message for the writing assistant"`
	ContextID string `help:"Document whose text to include as context"`
}

// Run executes the chat command.
func (c *ChatCmd) Run(deps *Dependencies) error {
	if !deps.Config.Configured() {
		fmt.Fprintf(deps.Stderr, "error: no API key configured. Run 'scriv config --provider %s --api-key <key>' first.\n", deps.Config.Provider)
		return scriv.Errorf(scriv.EINVALID, "no API key configured")
	}

	var contextText string
	if c.ContextID != "" {
		project, err := deps.Project()
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
			return err
		}

		entry, err := project.Binder().Resolve(c.ContextID)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
			return err
		}

		contextText, err = project.ReadContent(deps.Ctx, entry)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
			return err
		}
	}

	chatter, err := deps.Chatter(deps.Config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
		return err
	}

	reply, err := chatter.Chat(deps.Ctx, scriv.ChatRequest{Message: c.Message, Context: contextText})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scriv.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, reply)
	return nil
}
