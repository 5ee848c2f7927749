package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/avick-dev/bizmarket-service/internal/pkg/token"
)

const userIDKey = "user_id"

// AuthRequired validates the Bearer token and stores the caller's user ID
// in the request context.
func AuthRequired(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		parts := strings.Split(auth, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token format"})
			c.Abort()
			return
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// actorID returns the authenticated caller's user ID.
func actorID(c *gin.Context) string {
	return c.MustGet(userIDKey).(string)
}
