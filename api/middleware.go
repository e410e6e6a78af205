package api

import (
	"time"

	"github.com/gin-gonic/gin"
)

// requestTimer records the duration and outcome of every request
// into the server's request metrics collector.
func (s *Server) requestTimer() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		elapsed := time.Since(start)
		hasError := c.Writer.Status() >= 400
		s.requestMetrics.RecordRequest(elapsed, hasError)
	}
}
