package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireToken rejects requests without a valid bearer token.
// It must be used AFTER OptionalAuthMiddleware.
func RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(SubjectKey) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Valid bearer token required"})
			return
		}
		c.Next()
	}
}
