package auth

import (
	"strings"

	"messageboard/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// SubjectKey is the context key holding the subject of a valid bearer token.
const SubjectKey = "subject"

// OptionalAuthMiddleware inspects for a token and sets the subject if present and valid,
// but does not fail if the token is missing or invalid.
func OptionalAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				if subject, err := jwt.ParseToken(parts[1], secret); err == nil {
					c.Set(SubjectKey, subject)
				}
			}
		}
		c.Next()
	}
}
