package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"

	"github.com/scrivtools/scriv"
	"github.com/scrivtools/scriv/anthropic"
	"github.com/scrivtools/scriv/config"
	"github.com/scrivtools/scriv/fs"
	"github.com/scrivtools/scriv/gemini"
	"github.com/scrivtools/scriv/openai"
	"github.com/scrivtools/scriv/ratelimit"
	scrivslog "github.com/scrivtools/scriv/slog"
	"github.com/scrivtools/scriv/sqlite"
)

// Version is reported by the version command and the MCP server.
const Version = "0.1.0"

// chatRPS bounds how fast a held chat provider may be called.
const chatRPS = 1.0

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config file and catalog database paths. Set before calling Run().
	ConfigPath  string
	CatalogPath string

	// SQLite database backing the project catalog.
	DB *sqlite.DB

	// Services for end-to-end testing.
	Finder  scriv.Finder
	Catalog scriv.Catalog
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath:  defaultConfigPath(),
		CatalogPath: defaultCatalogPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("scriv"),
		kong.Description("Work with Scrivener writing projects from the command line."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'scriv --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	deps.Config = config.Load(m.ConfigPath)
	deps.ConfigPath = m.ConfigPath
	deps.ProjectPath = cli.Project

	// Open the project catalog
	m.DB = sqlite.NewDB(m.CatalogPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set %s to relocate the config directory\n", config.EnvPath)
		return fmt.Errorf("failed to open catalog at %q: %w", m.CatalogPath, err)
	}
	defer m.Close()
	m.Catalog = sqlite.NewCatalogService(m.DB)
	deps.Catalog = m.Catalog

	// Wire core services into dependencies
	m.Finder = fs.NewFinder()
	if cli.Verbose {
		m.Finder = scrivslog.NewLoggingFinder(m.Finder, logger)
	}
	deps.Finder = m.Finder
	deps.Open = m.opener(ctx, logger)
	deps.Chatter = chatterFactory(ctx, logger, cli.Verbose)

	return kongCtx.Run(deps)
}

// opener builds the ProjectOpener shared by every surface. Each open is
// recorded in the catalog; a catalog failure never blocks the open.
func (m *Main) opener(ctx context.Context, logger *slog.Logger) scriv.ProjectOpener {
	return func(path string) (scriv.Project, error) {
		project, err := fs.Open(path)
		if err != nil {
			return nil, err
		}

		stats := project.Binder().Stats()
		entry := &scriv.CatalogEntry{
			Path:        project.Path(),
			Name:        project.Name(),
			Items:       stats.Items,
			Documents:   stats.Documents,
			Fingerprint: sqlite.Fingerprint(project.Binder()),
			LastOpened:  time.Now(),
		}
		if err := m.Catalog.Remember(ctx, entry); err != nil {
			logger.Warn("failed to record project in catalog", "path", project.Path(), "error", err)
		}

		return project, nil
	}
}

// chatterFactory builds chat providers on demand from the current
// configuration. The Anthropic and Gemini SDKs get their own packages;
// everything else speaks the OpenAI wire format against a base URL.
func chatterFactory(ctx context.Context, logger *slog.Logger, verbose bool) ChatterFactory {
	return func(cfg config.Config) (scriv.Chatter, error) {
		var chatter scriv.Chatter
		switch cfg.Provider {
		case "anthropic":
			chatter = anthropic.NewChatter(cfg.APIKey, cfg.Model, cfg.ChatBaseURL())
		case "gemini":
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  cfg.APIKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			chatter = gemini.NewChatter(client, cfg.Model)
		default:
			chatter = openai.NewChatter(cfg.APIKey, cfg.Model, cfg.ChatBaseURL())
		}

		limited := ratelimit.NewChatter(chatter, chatRPS)
		if verbose {
			return scrivslog.NewLoggingChatter(limited, logger), nil
		}
		return limited, nil
	}
}

func defaultConfigPath() string {
	path, err := config.Path()
	if err != nil {
		return "config.json"
	}
	return path
}

func defaultCatalogPath() string {
	path, err := config.CatalogPath()
	if err != nil {
		return "catalog.db"
	}
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	return path
}
