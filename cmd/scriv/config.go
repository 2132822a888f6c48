package main

import (
	"fmt"

	"github.com/scrivtools/scriv/config"
)

// ConfigCmd is the "config" subcommand.
type ConfigCmd struct {
	Provider string `help:"Chat provider: openrouter, anthropic, openai, gemini, ollama, or custom"`
	APIKey   string `help:"API key for the provider"`
	Model    string `help:"Model identifier"`
	BaseURL  string `help:"Base URL for custom or proxied providers"`
}

// Run executes the config command.
func (c *ConfigCmd) Run(deps *Dependencies) error {
	cfg := deps.Config

	if c.Provider == "" && c.APIKey == "" && c.Model == "" && c.BaseURL == "" {
		fmt.Fprintf(deps.Stdout, "Provider:  %s\n", cfg.Provider)
		fmt.Fprintf(deps.Stdout, "Model:     %s\n", cfg.Model)
		fmt.Fprintf(deps.Stdout, "Base URL:  %s\n", cfg.BaseURL)
		fmt.Fprintf(deps.Stdout, "API key:   %s\n", keyStatus(cfg.APIKey))
		if cfg.LastProject != "" {
			fmt.Fprintf(deps.Stdout, "Last project:  %s\n", cfg.LastProject)
		}
		fmt.Fprintf(deps.Stdout, "Config file:   %s\n", deps.ConfigPath)
		return nil
	}

	provider := c.Provider
	if provider == "" {
		provider = cfg.Provider
	}
	model := c.Model
	if model == "" {
		model = cfg.Model
	}
	cfg.SetProvider(provider, model, c.APIKey, c.BaseURL)

	if err := config.Save(deps.ConfigPath, cfg); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Configuration saved to %s\n", deps.ConfigPath)
	return nil
}

func keyStatus(key string) string {
	if key == "" {
		return "not set"
	}
	return "set"
}
