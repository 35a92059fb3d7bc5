package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"yolo-transcript/internal/api/errors"
	"yolo-transcript/internal/app/auth"
)

// TokenVerifier validates bearer tokens
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Auth requires a valid bearer token and stores the user id in the context
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			HandleError(c, errors.NewUnauthorizedError("Missing bearer token"))
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		claims, err := verifier.Verify(token)
		if err != nil {
			HandleError(c, errors.NewUnauthorizedError("Invalid or expired token"))
			return
		}

		c.Set(UserIDKey, claims.Subject)
		c.Set(UserEmailKey, claims.Email)
		c.Next()
	}
}

// UserID returns the authenticated user id
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
