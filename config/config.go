// Package config persists tool settings as a small JSON file in the
// user's home directory.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// EnvPath overrides the default config file location when set.
const EnvPath = "SCRIV_CONFIG"

// EnvCatalog overrides the default catalog database location when set.
const EnvCatalog = "SCRIV_DB"

// Chat provider base URLs. A custom provider keeps whatever URL it was
// given.
const (
	openRouterURL = "https://openrouter.ai/api/v1"
	anthropicURL  = "https://api.anthropic.com/v1"
	openAIURL     = "https://api.openai.com/v1"
	ollamaURL     = "http://localhost:11434/v1"
)

// Config holds the persistent settings of the tool.
type Config struct {
	Provider    string `json:"provider"`
	APIKey      string `json:"api_key"`
	Model       string `json:"model"`
	BaseURL     string `json:"base_url"`
	LastProject string `json:"last_project,omitempty"`
}

// Default returns the out-of-the-box configuration: OpenRouter, with the
// key taken from the environment.
func Default() Config {
	return Config{
		Provider: "openrouter",
		APIKey:   os.Getenv("OPENROUTER_API_KEY"),
		Model:    "anthropic/claude-sonnet-4-20250514",
		BaseURL:  openRouterURL,
	}
}

// Path returns the config file location: $SCRIV_CONFIG when set, else
// ~/.scriv/config.json.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".scriv", "config.json"), nil
}

// CatalogPath returns the project catalog database location: $SCRIV_DB
// when set, else catalog.db alongside the config file.
func CatalogPath() (string, error) {
	if p := os.Getenv(EnvCatalog); p != "" {
		return p, nil
	}
	p, err := Path()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(p), "catalog.db"), nil
}

// Load reads the config at path, layered over the defaults so missing
// fields keep their default values. A missing or corrupt file yields the
// defaults unchanged.
func Load(path string) Config {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default()
	}
	return cfg
}

// Save writes the config to path, creating the directory if needed. The
// file carries the API key, so it is not group or world readable.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o600)
}

// SetProvider switches provider and model. An explicit base URL wins;
// otherwise known providers get their default URL. An empty API key keeps
// the stored one.
func (c *Config) SetProvider(provider, model, apiKey, baseURL string) {
	c.Provider = provider
	c.Model = model
	if apiKey != "" {
		c.APIKey = apiKey
	}

	switch {
	case baseURL != "":
		c.BaseURL = baseURL
	case provider == "openrouter":
		c.BaseURL = openRouterURL
	case provider == "anthropic":
		c.BaseURL = anthropicURL
	case provider == "openai":
		c.BaseURL = openAIURL
	case provider == "ollama":
		c.BaseURL = ollamaURL
	}
}

// Configured reports whether chat can work: an API key is present, or the
// provider does not need one.
func (c *Config) Configured() bool {
	return c.APIKey != "" || c.Provider == "ollama" || c.Provider == "custom"
}

// ChatBaseURL returns the base URL a chat SDK should be pointed at, or ""
// when the provider's own default endpoint applies. The Anthropic and
// OpenAI SDKs know their endpoints; only OpenRouter, Ollama, and custom
// proxies need an explicit URL.
func (c *Config) ChatBaseURL() string {
	switch c.BaseURL {
	case anthropicURL, openAIURL:
		return ""
	}
	return c.BaseURL
}
