package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/annel0/voxel-game/internal/logging"
)

// RequestLogger снабжает каждый HTTP-запрос request-ID и пишет краткие логи.
// Использует глобальный logging пакет (Info/Debug).

type RequestLogger struct{}

func NewRequestLogger() *RequestLogger { return &RequestLogger{} }

func (rl *RequestLogger) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)

		start := time.Now()
		method := c.Request.Method
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		clientIP := c.ClientIP()

		logging.Debug("[HTTP] ▶ %s %s ip=%s req=%s", method, path, clientIP, requestID)

		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)
		logging.Debug("[HTTP] ◀ %s %s %d %s req=%s", method, path, status, latency, requestID)
	}
}
