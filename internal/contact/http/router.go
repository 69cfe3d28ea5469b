package http

import "github.com/gin-gonic/gin"

// Register attaches the contact route. Extra handlers, such as a rate
// limiter, run before the relay.
func (h *Handler) Register(rg *gin.RouterGroup, pre ...gin.HandlerFunc) {
	rg.POST("/send-message", append(pre, h.send)...)
}
