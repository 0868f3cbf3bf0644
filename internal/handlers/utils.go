package handlers

import (
	"fakenews-detector/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// getCorrelationID gets or generates a correlation ID for request tracing
func getCorrelationID(c *gin.Context) string {
	if id := c.GetString(middleware.CorrelationIDKey); id != "" {
		return id
	}
	if id := c.GetHeader("X-Correlation-ID"); id != "" {
		return id
	}
	if id := c.GetHeader("X-Request-ID"); id != "" {
		return id
	}
	return uuid.New().String()
}
