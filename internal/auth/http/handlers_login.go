package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gavinjunior/portfolio-backend/internal/auth/domain"
)

// login exchanges the admin password for the static bearer token.
func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("login: decode body", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error during login."})
		return
	}

	token, err := h.issuer.Login(req.Password)
	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		h.logger.Error("login: ADMIN_PASSWORD or API_SECRET_TOKEN is not set")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server configuration error."})
		return
	case errors.Is(err, domain.ErrInvalidCredentials):
		h.logger.Info("login: rejected password", zap.String("client_ip", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid password."})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error during login."})
		return
	}

	c.JSON(http.StatusOK, loginResp{Message: "Login successful", Token: token})
}
