package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mfaridn/lacak/internal/config"
	"github.com/mfaridn/lacak/internal/db"
)

// Server is the lacak HTTP API server
type Server struct {
	cfg      *config.Config
	tasks    *db.TaskService
	sessions *db.SessionService
	running  *db.RunningTaskService
	stats    *db.StatsService
	auth     *db.AuthService
	router   *gin.Engine
}

// NewServer wires the service layer to the gin router.
func NewServer(cfg *config.Config, gdb *gorm.DB) *Server {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	s := &Server{
		cfg:      cfg,
		tasks:    db.NewTaskService(gdb),
		sessions: db.NewSessionService(gdb),
		running:  db.NewRunningTaskService(gdb),
		stats:    db.NewStatsService(gdb),
		auth:     db.NewAuthService(gdb),
		router:   router,
	}

	router.GET("/health", s.handleHealth)

	auth := router.Group("/auth")
	{
		auth.POST("/register", s.handleRegister)
		auth.POST("/login", s.handleLogin)
		auth.POST("/logout", s.handleLogout)
		auth.GET("/profile", s.requireUser(), s.handleGetProfile)
		auth.PUT("/profile", s.requireUser(), s.handleUpdateProfile)
	}

	api := router.Group("/api", s.resolveOwner())
	{
		api.GET("/tasks", s.handleListTasks)
		api.GET("/tasks/:id", s.handleGetTask)
		api.POST("/tasks", s.handleCreateTask)
		api.PUT("/tasks/:id", s.handleUpdateTask)
		api.DELETE("/tasks/:id", s.handleDeleteTask)

		api.POST("/tasks/:id/sessions", s.handleCreateSession)
		api.PUT("/tasks/:id/sessions/:sessionId", s.handleUpdateSession)
		api.DELETE("/tasks/:id/sessions/:sessionId", s.handleDeleteSession)

		api.POST("/tasks/:id/start", s.handleStartTask)
		api.POST("/tasks/:id/stop", s.handleStopTask)
		api.GET("/running-tasks", s.handleListRunning)
		api.GET("/running-tasks/count", s.handleCountRunning)

		api.GET("/stats", s.handleStats)
		api.GET("/history", s.handleHistory)
	}

	return s
}

// Router exposes the underlying gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
