package middleware

import (
	"net/http"
	"strings"

	"venuebook/internal/pkg/jwt"
	"venuebook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth resolves the Bearer token to a user identity and stores user_id and
// role on the context. Requests without a valid token are rejected.
func Auth(j *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token")
			c.Abort()
			return
		}

		claims, err := j.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}
