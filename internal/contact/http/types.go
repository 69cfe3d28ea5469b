package http

import (
	"go.uber.org/zap"

	"github.com/gavinjunior/portfolio-backend/internal/contact/service"
)

// Handler bundles the dependencies for the contact endpoint.
type Handler struct {
	relay  *service.Relay
	logger *zap.Logger
}

func New(relay *service.Relay, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{relay: relay, logger: logger}
}

type sendResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
