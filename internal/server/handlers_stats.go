package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleStats(c *gin.Context) {
	stats, err := s.stats.GetStats(owner(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleHistory(c *gin.Context) {
	history, err := s.stats.GetHistory(owner(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}
