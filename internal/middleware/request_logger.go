package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageza/recipes/backend/pkg/logger"
)

// RequestLogger writes one log line per request. Server errors log at
// error level, client errors at warn.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", path,
			"status_code", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.ClientIP(),
		}
		switch {
		case status >= 500:
			log.Error("HTTP request completed", args...)
		case status >= 400:
			log.Warn("HTTP request completed", args...)
		default:
			log.Info("HTTP request completed", args...)
		}
	}
}
