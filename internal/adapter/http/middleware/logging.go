package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccessLog writes one structured line per request.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if actor := ActorID(c); actor != "" {
			fields = append(fields, "actor_id", actor)
		}
		switch {
		case c.Writer.Status() >= 500:
			zap.S().Errorw("[http] request", fields...)
		case c.Writer.Status() >= 400:
			zap.S().Warnw("[http] request", fields...)
		default:
			zap.S().Infow("[http] request", fields...)
		}
	}
}

// Recovery turns panics into a 500 and logs them.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		zap.S().Errorf("[http] recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	})
}
