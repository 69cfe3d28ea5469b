package http

import (
	"go.uber.org/zap"

	"github.com/gavinjunior/portfolio-backend/internal/auth/service"
)

// Handler bundles the dependencies for the login endpoint.
type Handler struct {
	issuer *service.Issuer
	logger *zap.Logger
}

func New(issuer *service.Issuer, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{issuer: issuer, logger: logger}
}

type loginReq struct {
	Password string `json:"password"`
}

type loginResp struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
