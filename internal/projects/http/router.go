package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group. Reads are
// public; every write goes through requireAdmin first.
func (h *Handler) Register(rg *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	rg.GET("/projects", h.list)
	rg.POST("/projects", requireAdmin, h.create)
	rg.PATCH("/projects", requireAdmin, h.update)
	rg.DELETE("/projects", requireAdmin, h.delete)
}
