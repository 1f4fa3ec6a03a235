// Package ui exposes the scoring pipeline over HTTP.
package ui

import (
	"psychoscore/adapters/report"
	"psychoscore/app"
	"psychoscore/internal"
	"psychoscore/internal/config"
	"psychoscore/ports"

	"github.com/gin-gonic/gin"
)

// Server represents the web server for the scoring API
type Server struct {
	router   *gin.Engine
	profiles *app.ProfileService
	users    ports.UserRepository
	sessions ports.SessionRepository
	html     *report.HTMLRenderer
	logger   *internal.Logger
}

// NewServer creates a new web server instance
func NewServer(cfg *config.Config, profiles *app.ProfileService, users ports.UserRepository, sessions ports.SessionRepository, logger *internal.Logger) *Server {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router:   gin.New(),
		profiles: profiles,
		users:    users,
		sessions: sessions,
		html:     report.NewHTMLRenderer("Психологический профиль"),
		logger:   logger,
	}
	s.router.Use(gin.Recovery())
	s.setupRoutes()
	return s
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.POST("/users", s.handleCreateUser)
		api.GET("/users", s.handleListUsers)
		api.GET("/users/:id/results", s.handleUserResults)
		api.GET("/users/:id/stats", s.handleUserStats)
		api.GET("/users/:id/report", s.handleUserReport)
		api.GET("/users/:id/report.xlsx", s.handleUserWorkbook)

		api.POST("/sessions", s.handleCreateSession)
		api.GET("/sessions/:id", s.handleGetSession)
		api.POST("/sessions/:id/score", s.handleScoreSession)
	}
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	s.logger.Info("Starting scoring API on http://%s", addr)
	return s.router.Run(addr)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
