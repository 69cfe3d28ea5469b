package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status       string            `json:"status"`
	Timestamp    time.Time         `json:"timestamp"`
	Service      string            `json:"service"`
	Version      string            `json:"version"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// Pinger is a backing service the health check reports on. A nil Pinger is
// reported as "disabled".
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	serviceName string
	version     string
	deps        map[string]Pinger
}

func NewHealthHandler(serviceName, version string, deps map[string]Pinger) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		deps:        deps,
	}
}

// HealthCheck always answers 200. A down dependency only degrades the status.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	status := "healthy"
	deps := make(map[string]string, len(h.deps))
	for name, p := range h.deps {
		if p == nil {
			deps[name] = "disabled"
			continue
		}

		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		err := p.Ping(pingCtx)
		cancel()

		if err != nil {
			deps[name] = "down"
			status = "degraded"
		} else {
			deps[name] = "up"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:       status,
		Timestamp:    time.Now().UTC(),
		Service:      h.serviceName,
		Version:      h.version,
		Dependencies: deps,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
