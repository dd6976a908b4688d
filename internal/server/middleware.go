package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const ownerKey = "owner"

// resolveOwner assigns the owner id used to scope every /api query.
// Multi-tenant mode requires a valid bearer token; single-tenant mode
// always uses the anonymous owner, so there is no per-request branching
// on whether a token happens to be present.
func (s *Server) resolveOwner() gin.HandlerFunc {
	if !s.cfg.AuthRequired {
		return func(c *gin.Context) {
			c.Set(ownerKey, "")
			c.Next()
		}
	}

	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		user, err := s.auth.UserFromToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ownerKey, user.ID)
		c.Next()
	}
}

// requireUser guards the profile endpoints, which are account-bound in
// both tenancy modes.
func (s *Server) requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		user, err := s.auth.UserFromToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ownerKey, user.ID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func owner(c *gin.Context) string {
	return c.GetString(ownerKey)
}
