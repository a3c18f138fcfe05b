package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ValidateServiceKey guards internal endpoints (stock adjustments from
// warehouse tooling) with a shared X-API-KEY header.
func ValidateServiceKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" || c.GetHeader("X-API-KEY") != key {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
			c.Abort()
			return
		}
		c.Next()
	}
}
