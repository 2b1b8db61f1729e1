package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"luxe-be/internal/jwt"
)

// ContextUserIDKey is where AuthMiddleware stores the verified user id.
const ContextUserIDKey = "user_id"

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// AuthMiddleware rejects requests without a valid bearer token
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			unauthorized(c, "Not authenticated")
			return
		}

		userID, err := jwtService.ValidateToken(token)
		if err != nil {
			unauthorized(c, "Invalid authentication credentials")
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// UserID returns the id stored by AuthMiddleware, or "".
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserIDKey)
}

func unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}
