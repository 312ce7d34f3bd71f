package middleware

import (
	"security-toolbox/pkg/log"
	"security-toolbox/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"

	maxRequestIDLen = 128
)

// RequestID tags every request with an id, reusing the caller's
// X-Request-ID when it is short enough. The id is echoed in the response,
// stored in the gin context and attached to the request logger.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		c.Set(response.ContextKeyRequestID, id)
		c.Header(HeaderRequestID, id)

		ctx := m.l.WithFields(c.Request.Context(), log.FieldRequestID, id)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
