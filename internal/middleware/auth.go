package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"moving_ops/internal/redis"
	"moving_ops/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	ContextSessionID = "sessionID"
	ContextSession   = "session"
)

// AuthMiddleware admits requests carrying a bearer token whose session is
// still open.
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "malformed authorization header"})
			return
		}

		sessionID, session, err := authService.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			if !errors.Is(err, services.ErrInvalidToken) {
				log.Printf("[AUTH] Session lookup failed: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to verify session"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ContextSessionID, sessionID)
		c.Set(ContextSession, session)
		c.Next()
	}
}

// SessionID returns the id stored by AuthMiddleware.
func SessionID(c *gin.Context) string {
	return c.GetString(ContextSessionID)
}

func Session(c *gin.Context) *redis.SessionData {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil
	}
	session, _ := v.(*redis.SessionData)
	return session
}
