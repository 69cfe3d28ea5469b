package auth

import "github.com/gin-gonic/gin"

const (
	CtxAdmin = "admin_authenticated"
)

// IsAdmin reports whether the bearer middleware accepted this request.
// This is set by middleware.RequireBearer
func IsAdmin(c *gin.Context) bool {
	return c.GetBool(CtxAdmin)
}
