package handlers

import (
	"errors"
	"log"
	"net/http"

	"moving_ops/internal/draft"
	"moving_ops/internal/models"
	"moving_ops/internal/redis"
	"moving_ops/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to status codes. Anything unrecognised is
// logged and reported as a 500 without details.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrValidation), errors.Is(err, draft.ErrNotRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound),
		errors.Is(err, redis.ErrDraftNotFound),
		errors.Is(err, draft.ErrExtraNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		log.Printf("[HTTP] %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": ParseErrors(err)})
}
