package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves a Zap logger from the Gin context or falls back to the
// global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return zap.L()
}

// currentUserID returns the authenticated user's ID, or "" for guests.
func currentUserID(c *gin.Context) string {
	if v, exists := c.Get("userID"); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
