package middleware

import (
	"net/http"
	"time"

	"security-toolbox/pkg/log"

	"github.com/gin-gonic/gin"
)

// Logger writes one line per request once the handlers have run.
// Query strings are left out since they carry tokens and user text.
func (m Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		fields := []any{
			log.FieldMethod, c.Request.Method,
			log.FieldPath, c.Request.URL.Path,
			log.FieldStatus, status,
			log.FieldLatency, time.Since(start).String(),
			log.FieldClientIP, c.ClientIP(),
		}

		switch {
		case status >= http.StatusInternalServerError:
			m.l.Errorf(m.l.WithFields(ctx, fields...), "request failed")
		case status >= http.StatusBadRequest:
			m.l.Warnf(m.l.WithFields(ctx, fields...), "request rejected")
		default:
			m.l.Infow(ctx, "request handled", fields...)
		}
	}
}
