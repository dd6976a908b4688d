package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mfaridn/lacak/internal/db"
)

func sessionID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("sessionId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return 0, false
	}
	return uint(id), true
}

func (s *Server) handleCreateSession(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	var req db.CreateSessionRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := s.sessions.CreateSession(id, owner(c), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok":       true,
		"duration": session.Duration,
		"session":  session,
	})
}

func (s *Server) handleUpdateSession(c *gin.Context) {
	tid, ok := taskID(c)
	if !ok {
		return
	}
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	var req db.UpdateSessionRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := s.sessions.UpdateSession(tid, sid, owner(c), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (s *Server) handleDeleteSession(c *gin.Context) {
	tid, ok := taskID(c)
	if !ok {
		return
	}
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	if err := s.sessions.DeleteSession(tid, sid, owner(c)); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
