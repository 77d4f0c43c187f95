package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/party-rsvp/backend/pkg/response"
)

// Recovery returns a middleware that turns any panic into a generic 500.
// The diagnostic stays server-side; nothing internal reaches the client.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		logger.Error("panic recovered",
			zap.Any("error", err),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(ContextRequestID)),
		)
		response.Internal(c, "internal error")
		c.Abort()
	})
}
