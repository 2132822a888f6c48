package http

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/scrivtools/scriv"
	"github.com/scrivtools/scriv/config"
)

func (a *API) handleProjects(c *gin.Context) {
	var (
		infos []*scriv.ProjectInfo
		err   error
	)
	if searchPath := c.Query("search_path"); searchPath != "" {
		infos, err = a.finder.Discover(c.Request.Context(), []string{expandHome(searchPath)}, 4)
	} else {
		infos, err = a.finder.Discover(c.Request.Context(), nil, -1)
	}
	if err != nil {
		respondAppError(c, err)
		return
	}
	if infos == nil {
		infos = []*scriv.ProjectInfo{}
	}

	resp := gin.H{"projects": infos}
	if a.catalog != nil {
		if recent, err := a.catalog.Recent(c.Request.Context(), 5); err == nil {
			resp["recent"] = recent
		}
	}
	c.JSON(http.StatusOK, resp)
}

type browseItem struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	IsDir   bool   `json:"is_dir"`
	IsScriv bool   `json:"is_scriv"`
}

func (a *API) handleBrowse(c *gin.Context) {
	path := c.Query("path")
	dir := expandHome(path)
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			respondError(c, http.StatusInternalServerError, err)
			return
		}
		dir = home
	}

	info, err := os.Stat(dir)
	if err != nil {
		respondMessage(c, http.StatusNotFound, "Path not found: "+path)
		return
	}
	if !info.IsDir() {
		respondMessage(c, http.StatusBadRequest, "Not a directory: "+path)
		return
	}

	items := []browseItem{}
	entries, err := os.ReadDir(dir)
	if err != nil && !errors.Is(err, fs.ErrPermission) {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		items = append(items, browseItem{
			Name:    name,
			Path:    filepath.Join(dir, name),
			IsDir:   true,
			IsScriv: filepath.Ext(name) == ".scriv",
		})
	}
	sort.Slice(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})

	var parent any
	if p := filepath.Dir(dir); p != dir {
		parent = p
	}
	c.JSON(http.StatusOK, gin.H{
		"current": dir,
		"parent":  parent,
		"items":   items,
	})
}

func (a *API) handleOpenProject(c *gin.Context) {
	var payload struct {
		Path string `json:"path" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	project, err := a.open(expandHome(payload.Path))
	if err != nil {
		respondAppError(c, err)
		return
	}

	a.mu.Lock()
	a.project = project
	a.cfg.LastProject = project.Path()
	saveErr := config.Save(a.cfgPath, a.cfg)
	a.mu.Unlock()
	if saveErr != nil {
		respondError(c, http.StatusInternalServerError, saveErr)
		return
	}

	stats := project.Binder().Stats()
	c.JSON(http.StatusOK, gin.H{
		"name":        project.Name(),
		"path":        project.Path(),
		"is_locked":   project.Locked(),
		"total_items": stats.Items,
		"text_items":  stats.Documents,
	})
}

func (a *API) handleProjectStatus(c *gin.Context) {
	project, err := a.current()
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"loaded": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"loaded":    true,
		"name":      project.Name(),
		"path":      project.Path(),
		"is_locked": project.Locked(),
	})
}

type binderItem struct {
	UUID             string        `json:"uuid"`
	Title            string        `json:"title"`
	Path             string        `json:"path"`
	Type             scriv.Kind    `json:"type"`
	IsFolder         bool          `json:"is_folder"`
	IsText           bool          `json:"is_text"`
	IncludeInCompile bool          `json:"include_in_compile"`
	Children         []*binderItem `json:"children"`
}

func toBinderItem(e *scriv.Entry) *binderItem {
	item := &binderItem{
		UUID:             e.ID,
		Title:            e.Title,
		Path:             e.Path(),
		Type:             e.Kind,
		IsFolder:         e.IsFolder(),
		IsText:           e.IsText(),
		IncludeInCompile: e.IncludeInCompile,
		Children:         []*binderItem{},
	}
	for _, child := range e.Children {
		item.Children = append(item.Children, toBinderItem(child))
	}
	return item
}

func (a *API) handleBinder(c *gin.Context) {
	project, err := a.current()
	if err != nil {
		respondAppError(c, err)
		return
	}

	items := []*binderItem{}
	for _, entry := range project.Binder().Items {
		items = append(items, toBinderItem(entry))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type searchResult struct {
	UUID    string   `json:"uuid"`
	Title   string   `json:"title"`
	Path    string   `json:"path"`
	Matches []string `json:"matches"`
}

func (a *API) handleSearch(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		respondMessage(c, http.StatusBadRequest, "query parameter required")
		return
	}

	project, err := a.current()
	if err != nil {
		respondAppError(c, err)
		return
	}

	matches, err := project.Search(c.Request.Context(), query, c.Query("case_sensitive") == "true")
	if err != nil {
		respondAppError(c, err)
		return
	}

	results := []searchResult{}
	for _, match := range matches {
		lines := match.Lines
		if len(lines) > 5 {
			lines = lines[:5]
		}
		results = append(results, searchResult{
			UUID:    match.Entry.ID,
			Title:   match.Entry.Title,
			Path:    match.Entry.Path(),
			Matches: lines,
		})
	}
	c.JSON(http.StatusOK, gin.H{"query": query, "results": results})
}
