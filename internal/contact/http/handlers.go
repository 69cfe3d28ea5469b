package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gavinjunior/portfolio-backend/internal/contact/domain"
)

func (h *Handler) send(c *gin.Context) {
	var msg domain.Message
	if err := c.ShouldBindJSON(&msg); err != nil {
		h.logger.Warn("send-message: decode body", zap.Error(err))
		c.JSON(http.StatusInternalServerError, sendResp{Message: "Failed to send email.", Error: err.Error()})
		return
	}

	if err := h.relay.Send(c.Request.Context(), msg); err != nil {
		c.JSON(http.StatusInternalServerError, sendResp{Message: "Failed to send email.", Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, sendResp{Success: true, Message: "Email sent successfully!"})
}
