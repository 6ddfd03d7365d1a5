package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/devfolio/backend/go-services/internal/sessions"
)

// RequireSession returns a Gin middleware gating admin-only routes on the
// session cookie. Presence of the cookie is sufficient; the value is only
// decoded by the /api/auth/me handler.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sessions.Present(c.Request) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		c.Next()
	}
}
