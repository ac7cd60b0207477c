package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdminSecret guards the admin surface with a single shared secret.
// The secret is resolved once at startup (the server refuses to boot without
// one); there are no sessions or tokens. This is a deterrent, not an access
// control boundary.
func RequireAdminSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader("X-Admin-Secret")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing admin secret"})
			c.Abort()
			return
		}
		c.Next()
	}
}
