package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"workout-core/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// RequestID assigns each request an id, honoring one supplied by the
// caller, and threads it through the context so the logger picks it up.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}

		ctx := context.WithValue(c.Request.Context(), log.RequestIDKey, rid)
		c.Request = c.Request.WithContext(ctx)
		c.Header(requestIDHeader, rid)
		c.Next()
	}
}
