package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Logging writes one entry per request. Upstream failures log at warn
// and server errors at error level.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		entry := log.WithFields(log.Fields{
			"status":     status,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"bytes":      c.Writer.Size(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
			"request_id": c.GetString(contextKeyRequestID),
		})

		switch {
		case status == http.StatusBadGateway || status == http.StatusGatewayTimeout:
			entry.Warn("request completed")
		case status >= http.StatusInternalServerError:
			entry.Error("request completed")
		default:
			entry.Info("request completed")
		}
	}
}
