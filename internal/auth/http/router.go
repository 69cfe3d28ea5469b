package http

import "github.com/gin-gonic/gin"

// Register attaches the login route to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/login", h.login)
}
