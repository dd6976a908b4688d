package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleStartTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	marker, err := s.running.Start(id, owner(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, marker)
}

func (s *Server) handleStopTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	// Idempotent: stopping a task that is not running still succeeds.
	if _, err := s.running.Stop(id, owner(c)); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) handleListRunning(c *gin.Context) {
	running, err := s.running.List(owner(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, running)
}

func (s *Server) handleCountRunning(c *gin.Context) {
	count, err := s.running.Count(owner(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
