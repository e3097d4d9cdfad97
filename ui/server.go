package ui

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"chartdeck/app"
	"chartdeck/internal/config"
	"chartdeck/ports"
)

// Server represents the chart generation web server
type Server struct {
	router    *gin.Engine
	generator *app.GenerateService
	store     ports.ArtifactStore

	sweepMaxAge    time.Duration
	maxUploadBytes int64
}

// NewServer creates a new web server instance wired to its dependencies.
func NewServer(generator *app.GenerateService, store ports.ArtifactStore, cfg *config.Config) *Server {
	s := &Server{
		router:         gin.Default(),
		generator:      generator,
		store:          store,
		sweepMaxAge:    cfg.Sweep.MaxAge,
		maxUploadBytes: cfg.Upload.MaxMemoryMB << 20,
	}

	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleHome)
	s.router.POST("/generate-chart", s.handleGenerateChart)
	s.router.GET("/download-chart/:id", s.handleDownloadChart)
	s.router.GET("/cleanup", s.handleCleanup)
}

// Router exposes the underlying handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// HTTPServer builds the http.Server bound to addr.
func (s *Server) HTTPServer(addr string) *http.Server {
	log.Printf("[Server] Listening on %s", addr)
	return &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
}
