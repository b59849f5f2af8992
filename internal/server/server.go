package server

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"matchsight/internal/analysis"
	"matchsight/internal/storage/sqlite"
)

const defaultShareTTL = 30 * 24 * time.Hour

// Config wires the API surface.
type Config struct {
	Service  *analysis.Service
	Links    *sqlite.Store // optional; share endpoints 404 without it
	ShareTTL time.Duration
}

// Server exposes the analysis pipeline over HTTP.
type Server struct {
	router   *gin.Engine
	service  *analysis.Service
	links    *sqlite.Store
	shareTTL time.Duration
}

// NewServer builds the router. The pipeline service is required; the share
// link store is collaborator glue and may be absent.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Service == nil {
		return nil, fmt.Errorf("server: analysis service is required")
	}
	shareTTL := cfg.ShareTTL
	if shareTTL <= 0 {
		shareTTL = defaultShareTTL
	}
	s := &Server{
		router:   gin.Default(),
		service:  cfg.Service,
		links:    cfg.Links,
		shareTTL: shareTTL,
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")
	api.POST("/analyze", s.handleAnalyze)
	api.POST("/share", s.handleShare)
	api.GET("/share/:slug", s.handleGetShare)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run blocks serving HTTP on addr.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
