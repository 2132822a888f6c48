// Package http provides the JSON web API for browsing and editing a
// writing project from a browser.
//
// The API owns one open project at a time, guarded by a mutex because gin
// serves handlers concurrently. Application error codes map onto HTTP
// status codes in respondAppError.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Server wraps the gin engine around a configured API.
type Server struct {
	engine *gin.Engine
}

// NewServer builds the HTTP server for the given API. Requests are logged
// through logger.
func NewServer(api *API, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestLogger(logger))
	engine.Use(CORS())

	registerRoutes(engine, api)

	return &Server{engine: engine}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

// Run serves the API on addr until the listener fails.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}
