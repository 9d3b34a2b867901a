package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gradepilot/gradepilot/internal/common"
)

// requestLogger logs one line per request with a generated request id.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		rid := uuid.New().String()
		c.Request = c.Request.WithContext(common.WithRequestID(c.Request.Context(), rid))
		c.Header("X-Request-ID", rid)

		c.Next()

		s.logger.Info("http.request",
			"req_id", rid,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	}
}
