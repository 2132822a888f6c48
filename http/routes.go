package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/scrivtools/scriv"
	"github.com/scrivtools/scriv/config"
)

// ChatterFunc builds a chat provider for the given configuration. The
// provider settings can change between requests, so the API constructs a
// chatter per chat call.
type ChatterFunc func(cfg config.Config) (scriv.Chatter, error)

// API holds the handlers' shared state: the one open project, the
// persistent configuration, and the services behind discovery and chat.
type API struct {
	open    scriv.ProjectOpener
	finder  scriv.Finder
	catalog scriv.Catalog
	chatter ChatterFunc
	cfgPath string
	client  *http.Client

	mu      sync.Mutex
	project scriv.Project
	cfg     config.Config
}

// NewAPI wires the API. catalog may be nil when no project history is
// kept; cfg is the configuration loaded from cfgPath at startup.
func NewAPI(open scriv.ProjectOpener, finder scriv.Finder, catalog scriv.Catalog, chatter ChatterFunc, cfg config.Config, cfgPath string) *API {
	return &API{
		open:    open,
		finder:  finder,
		catalog: catalog,
		chatter: chatter,
		cfg:     cfg,
		cfgPath: cfgPath,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func registerRoutes(r *gin.Engine, api *API) {
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", api.handleHealth)

		apiGroup.GET("/projects", api.handleProjects)
		apiGroup.GET("/browse", api.handleBrowse)
		apiGroup.POST("/project/open", api.handleOpenProject)
		apiGroup.GET("/project/status", api.handleProjectStatus)

		apiGroup.GET("/binder", api.handleBinder)
		apiGroup.GET("/document/*identifier", api.handleReadDocument)
		apiGroup.POST("/document/write", api.handleWriteDocument)
		apiGroup.POST("/synopsis/write", api.handleWriteSynopsis)
		apiGroup.POST("/notes/write", api.handleWriteNotes)
		apiGroup.POST("/document/create", api.handleCreateDocument)
		apiGroup.GET("/search", api.handleSearch)

		apiGroup.GET("/llm/config", api.handleGetLLMConfig)
		apiGroup.POST("/llm/config", api.handleSetLLMConfig)
		apiGroup.GET("/llm/models", api.handleModels)
		apiGroup.POST("/chat", api.handleChat)
	}
}

func (a *API) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// current returns the open project, or an EINVALID error that maps to a
// 400 "No project loaded" response.
func (a *API) current() (scriv.Project, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.project == nil {
		return nil, scriv.Errorf(scriv.EINVALID, "No project loaded")
	}
	return a.project, nil
}

// configSnapshot returns a copy of the live configuration.
func (a *API) configSnapshot() config.Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}

func respondError(c *gin.Context, status int, err error) {
	respondMessage(c, status, err.Error())
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondAppError maps application error codes onto HTTP statuses.
func respondAppError(c *gin.Context, err error) {
	respondMessage(c, statusFor(err), scriv.ErrorMessage(err))
}

func statusFor(err error) int {
	switch scriv.ErrorCode(err) {
	case scriv.ENOTFOUND:
		return http.StatusNotFound
	case scriv.ELOCKED:
		return http.StatusLocked
	case scriv.EAMBIGUOUS, scriv.EINVALID, scriv.EINVALIDTARGET, scriv.EINVALIDPROJECT:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// expandHome resolves a leading ~ in user-supplied paths.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
