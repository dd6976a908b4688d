package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mfaridn/lacak/internal/db"
)

// writeError maps the service error taxonomy to HTTP statuses. Every error
// body has the shape {"error": message}.
func writeError(c *gin.Context, err error) {
	var validation *db.ValidationError
	var conflict *db.ConflictError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Message})
	case errors.Is(err, db.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, db.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
