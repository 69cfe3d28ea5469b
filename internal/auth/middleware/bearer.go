package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gavinjunior/portfolio-backend/internal/auth"
	"github.com/gavinjunior/portfolio-backend/internal/auth/domain"
	"github.com/gavinjunior/portfolio-backend/internal/auth/service"
)

// RequireBearer rejects requests whose Authorization bearer token is not
// exactly the configured secret. With no secret configured every request
// fails with a configuration error instead of being let through.
func RequireBearer(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := service.Verify(extractToken(c), secret)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrNotConfigured):
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"message": "Server configuration error.",
			})
			return
		default:
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Unauthorized: Invalid or missing API token.",
			})
			return
		}

		c.Set(auth.CtxAdmin, true)
		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header.
// The token is taken verbatim; surrounding whitespace makes it a different token.
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
