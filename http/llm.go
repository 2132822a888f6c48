package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scrivtools/scriv"
	"github.com/scrivtools/scriv/config"
)

func (a *API) handleGetLLMConfig(c *gin.Context) {
	cfg := a.configSnapshot()
	c.JSON(http.StatusOK, gin.H{
		"provider":      cfg.Provider,
		"model":         cfg.Model,
		"base_url":      cfg.BaseURL,
		"has_api_key":   cfg.APIKey != "",
		"is_configured": cfg.Configured(),
		"last_project":  cfg.LastProject,
	})
}

func (a *API) handleSetLLMConfig(c *gin.Context) {
	var payload struct {
		Provider string `json:"provider" binding:"required"`
		APIKey   string `json:"api_key"`
		Model    string `json:"model"`
		BaseURL  string `json:"base_url"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	a.mu.Lock()
	a.cfg.SetProvider(payload.Provider, payload.Model, payload.APIKey, payload.BaseURL)
	err := config.Save(a.cfgPath, a.cfg)
	a.mu.Unlock()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// handleModels lists the models a local Ollama server offers. Other
// providers publish far too many models to enumerate usefully.
func (a *API) handleModels(c *gin.Context) {
	cfg := a.configSnapshot()
	if cfg.Provider != "ollama" {
		c.JSON(http.StatusOK, gin.H{"models": []string{}, "error": "Only supported for Ollama"})
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, cfg.BaseURL+"/models", nil)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"models": []string{}, "error": err.Error()})
		return
	}
	resp, err := a.client.Do(req)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"models": []string{}, "error": err.Error()})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusOK, gin.H{"models": []string{}, "error": fmt.Sprintf("unexpected status %d", resp.StatusCode)})
		return
	}

	var body struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.JSON(http.StatusOK, gin.H{"models": []string{}, "error": err.Error()})
		return
	}

	models := make([]string, 0, len(body.Data))
	for _, m := range body.Data {
		models = append(models, m.ID)
	}
	c.JSON(http.StatusOK, gin.H{"models": models})
}

func (a *API) handleChat(c *gin.Context) {
	var payload struct {
		Message string `json:"message" binding:"required"`
		Context string `json:"context"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	cfg := a.configSnapshot()
	if !cfg.Configured() {
		respondMessage(c, http.StatusBadRequest, "No API key configured")
		return
	}

	chatter, err := a.chatter(cfg)
	if err != nil {
		respondAppError(c, err)
		return
	}

	reply, err := chatter.Chat(c.Request.Context(), scriv.ChatRequest{
		Message: payload.Message,
		Context: payload.Context,
	})
	if err != nil {
		respondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}
