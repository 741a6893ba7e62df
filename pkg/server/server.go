// Package server exposes the exploration engine over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soundprediction/ramify"
	"github.com/soundprediction/ramify/pkg/config"
	"github.com/soundprediction/ramify/pkg/server/handlers"
	"github.com/soundprediction/ramify/pkg/types"
)

// Server represents the HTTP server
type Server struct {
	config   *config.Config
	router   *gin.Engine
	explorer ramify.Explorer
	server   *http.Server
}

// New creates a new server instance
func New(cfg *config.Config, explorer ramify.Explorer) *Server {
	return &Server{
		config:   cfg,
		explorer: explorer,
	}
}

// Setup sets up the server routes and middleware
func (s *Server) Setup() {
	gin.SetMode(s.config.Server.Mode)

	s.router = gin.New()
	s.router.Use(gin.Logger())
	s.router.Use(gin.Recovery())

	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
}

// Router returns the underlying gin router, for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// setupRoutes sets up all the routes
func (s *Server) setupRoutes() {
	healthHandler := handlers.NewHealthHandler()
	exploreHandler := handlers.NewExploreHandler(s.explorer, s.strategyDefaults())

	s.router.GET("/health", healthHandler.HealthCheck)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/explore", exploreHandler.Explore)
	}
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	if s.server == nil {
		return fmt.Errorf("server not set up, call Setup first")
	}
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) strategyDefaults() types.SearchStrategy {
	defaults := types.DefaultStrategy()
	if s.config.Search.ExplorationConstant > 0 {
		defaults.ExplorationConstant = s.config.Search.ExplorationConstant
	}
	if s.config.Search.MaxIterations > 0 {
		defaults.MaxIterations = s.config.Search.MaxIterations
	}
	if s.config.Search.MaxDepth > 0 {
		defaults.MaxDepth = s.config.Search.MaxDepth
	}
	if s.config.Search.FanOut > 0 {
		defaults.FanOut = s.config.Search.FanOut
	}
	if s.config.Search.TopPaths > 0 {
		defaults.TopPaths = s.config.Search.TopPaths
	}
	return defaults
}
