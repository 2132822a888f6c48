package mcp

import (
	"os"
	"sync"

	"github.com/scrivtools/scriv"
)

// EnvProject names the environment variable that preloads a project for
// clients that cannot call open_project first.
const EnvProject = "SCRIVENER_PROJECT"

// Session holds the single project an MCP client works against. Tools
// share one session; open_project swaps the project for the rest of the
// connection.
type Session struct {
	open scriv.ProjectOpener

	mu      sync.Mutex
	project scriv.Project
}

// NewSession returns a session that opens projects through open.
func NewSession(open scriv.ProjectOpener) *Session {
	return &Session{open: open}
}

// Current returns the session's project. When none has been opened yet it
// falls back to the path in SCRIVENER_PROJECT, opening it on first use.
func (s *Session) Current() (scriv.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.project != nil {
		return s.project, nil
	}

	path := os.Getenv(EnvProject)
	if path == "" {
		return nil, scriv.Errorf(scriv.EINVALID,
			"no project loaded: set the %s environment variable to the path of your .scriv folder, or use the open_project tool", EnvProject)
	}

	project, err := s.open(path)
	if err != nil {
		return nil, err
	}
	s.project = project
	return project, nil
}

// Open loads the project at path and makes it the session's current one.
func (s *Session) Open(path string) (scriv.Project, error) {
	project, err := s.open(path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.project = project
	s.mu.Unlock()
	return project, nil
}
