package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/party-rsvp/backend/internal/admin"
	"github.com/party-rsvp/backend/pkg/response"
)

// RequireAdmin returns a middleware that gates a route behind a valid admin
// session cookie. Anything else gets a bare 403 with no data and no side
// effects.
func RequireAdmin(sessions *admin.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(admin.CookieName)
		if err != nil || sessions.Validate(token) != nil {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
