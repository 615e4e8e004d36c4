package api

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// UserHeader identifies the caller. There is no authentication; the header
// only scopes ownership and hand sessions.
const UserHeader = "X-User-ID"

// RequestLogger logs one line per request.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request completed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

func userID(c *gin.Context) string {
	return c.GetHeader(UserHeader)
}
