package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mfaridn/lacak/internal/db"
)

func (s *Server) handleRegister(c *gin.Context) {
	var req db.RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := s.auth.Register(req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user":    user,
	})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req db.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := s.auth.Login(req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

func (s *Server) handleLogout(c *gin.Context) {
	token := bearerToken(c)
	if token != "" {
		if err := s.auth.Logout(token); err != nil {
			writeError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleGetProfile(c *gin.Context) {
	user, err := s.auth.Profile(owner(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (s *Server) handleUpdateProfile(c *gin.Context) {
	var req db.ProfileUpdateRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := s.auth.UpdateProfile(owner(c), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
