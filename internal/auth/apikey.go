// Package auth guards the API with a single shared secret carried in the
// X-API-Key header.
package auth

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
	"github.com/prepforge/prepforge/pkg/response"
)

const HeaderName = "X-API-Key"

// APIKey rejects any request whose X-API-Key header does not equal secret.
func APIKey(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader(HeaderName)
		if got == "" {
			response.Unauthorized(c, "missing API key")
			c.Abort()
			return
		}
		if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			response.Unauthorized(c, "invalid API key")
			c.Abort()
			return
		}
		c.Next()
	}
}
