package middleware

import (
	"security-toolbox/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic in a later handler into a 500 and reports it.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				ctx := c.Request.Context()
				m.l.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s",
					rec, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, rec, m.discord)
				c.Abort()
			}
		}()
		c.Next()
	}
}
