package http

import (
	"go.uber.org/zap"

	"github.com/gavinjunior/portfolio-backend/internal/projects/service"
)

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc    *service.ProjectService
	logger *zap.Logger
}

func New(svc *service.ProjectService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, logger: logger}
}

type createResp struct {
	Message   string `json:"message"`
	ProjectID string `json:"projectId"`
}

type errorResp struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
