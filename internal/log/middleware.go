package log

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger returns gin middleware that logs one line per request with
// method, path, status and duration.
func RequestLogger(logger *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
