package Middlewares

import (
	"time"

	"github.com/ChungBound/canvasAnalytics/src/Logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestLogMiddleware tags every request with an id and writes one
// structured log line when the handler chain finishes.
func RequestLogMiddleware(log *Logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-Id", requestID)

		start := time.Now()
		c.Next()

		log.Info("request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
