package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/baobabplus/application-agent-services/internal/shared/contextutil"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an id and a scoped logger, reusing
// the caller's id when one is supplied.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := contextutil.WithRequestID(c.Request.Context(), id)
		ctx = contextutil.WithLogger(ctx, zap.L().With(zap.String("request_id", id)))
		c.Request = c.Request.WithContext(ctx)

		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}
