package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/scrivtools/scriv"
)

const lockedMessage = "Project is open in Scrivener. Close Scrivener before writing."

func (a *API) handleReadDocument(c *gin.Context) {
	identifier := strings.TrimPrefix(c.Param("identifier"), "/")
	if identifier == "" {
		respondMessage(c, http.StatusBadRequest, "identifier required")
		return
	}

	project, err := a.current()
	if err != nil {
		respondAppError(c, err)
		return
	}
	entry, err := project.Binder().Resolve(identifier)
	if err != nil {
		respondAppError(c, err)
		return
	}

	if entry.IsFolder() {
		words, err := project.WordCount(c.Request.Context(), entry, true)
		if err != nil {
			respondAppError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"uuid":       entry.ID,
			"title":      entry.Title,
			"path":       entry.Path(),
			"is_folder":  true,
			"word_count": words,
		})
		return
	}

	ctx := c.Request.Context()
	content, err := project.ReadContent(ctx, entry)
	if err != nil {
		respondAppError(c, err)
		return
	}
	synopsis, err := project.ReadSynopsis(ctx, entry)
	if err != nil {
		respondAppError(c, err)
		return
	}
	notes, err := project.ReadNotes(ctx, entry)
	if err != nil {
		respondAppError(c, err)
		return
	}
	words, err := project.WordCount(ctx, entry, false)
	if err != nil {
		respondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"uuid":               entry.ID,
		"title":              entry.Title,
		"path":               entry.Path(),
		"is_folder":          false,
		"content":            content,
		"synopsis":           synopsis,
		"notes":              notes,
		"word_count":         words,
		"include_in_compile": entry.IncludeInCompile,
	})
}

// resolveForWrite finds the mutation target after confirming the project
// is not open in Scrivener. The lock is reported before resolution so a
// stale identifier does not mask the real obstacle.
func (a *API) resolveForWrite(c *gin.Context, identifier string) (scriv.Project, *scriv.Entry, bool) {
	project, err := a.current()
	if err != nil {
		respondAppError(c, err)
		return nil, nil, false
	}
	if project.Locked() {
		respondMessage(c, http.StatusLocked, lockedMessage)
		return nil, nil, false
	}
	entry, err := project.Binder().Resolve(identifier)
	if err != nil {
		respondAppError(c, err)
		return nil, nil, false
	}
	return project, entry, true
}

func (a *API) handleWriteDocument(c *gin.Context) {
	var payload struct {
		Identifier string `json:"identifier" binding:"required"`
		Content    string `json:"content"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	project, entry, ok := a.resolveForWrite(c, payload.Identifier)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	oldCount, err := project.WordCount(ctx, entry, false)
	if err != nil {
		respondAppError(c, err)
		return
	}
	if err := project.WriteContent(ctx, entry, payload.Content, true); err != nil {
		respondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"title":          entry.Title,
		"old_word_count": oldCount,
		"new_word_count": len(strings.Fields(payload.Content)),
	})
}

func (a *API) handleWriteSynopsis(c *gin.Context) {
	var payload struct {
		Identifier string `json:"identifier" binding:"required"`
		Synopsis   string `json:"synopsis"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	project, entry, ok := a.resolveForWrite(c, payload.Identifier)
	if !ok {
		return
	}
	if err := project.WriteSynopsis(c.Request.Context(), entry, payload.Synopsis); err != nil {
		respondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "title": entry.Title})
}

func (a *API) handleWriteNotes(c *gin.Context) {
	var payload struct {
		Identifier string `json:"identifier" binding:"required"`
		Notes      string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	project, entry, ok := a.resolveForWrite(c, payload.Identifier)
	if !ok {
		return
	}
	if err := project.WriteNotes(c.Request.Context(), entry, payload.Notes, true); err != nil {
		respondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "title": entry.Title})
}

func (a *API) handleCreateDocument(c *gin.Context) {
	var payload struct {
		Title      string `json:"title" binding:"required"`
		ParentPath string `json:"parent_path" binding:"required"`
		Content    string `json:"content"`
		Synopsis   string `json:"synopsis"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	project, parent, ok := a.resolveForWrite(c, payload.ParentPath)
	if !ok {
		return
	}

	entry, err := project.CreateDocument(c.Request.Context(), scriv.CreateDocumentParams{
		Title:    payload.Title,
		Parent:   parent,
		Content:  payload.Content,
		Synopsis: payload.Synopsis,
	})
	if err != nil {
		respondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"uuid":    entry.ID,
		"title":   entry.Title,
		"path":    entry.Path(),
	})
}
