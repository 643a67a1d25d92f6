// Package http contains the HTTP handlers for the storage backend.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/halcyonbrowser/backend/internal/api/middleware"
	"github.com/halcyonbrowser/backend/internal/domain/profiles"
	"github.com/halcyonbrowser/backend/internal/monitoring"
	"github.com/halcyonbrowser/backend/internal/service"
	"github.com/halcyonbrowser/backend/internal/shared/types"
)

// Version reported by the root endpoint.
const Version = "0.3.0"

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	profiles *profiles.Manager
	metrics  *monitoring.Metrics
}

// NewHandlers creates a new handler set
func NewHandlers(registry *service.Registry, profiles *profiles.Manager, metrics *monitoring.Metrics) *Handlers {
	return &Handlers{
		registry: registry,
		profiles: profiles,
		metrics:  metrics,
	}
}

// Root handles the basic liveness check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "halcyon-browserd",
		"version": Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"services":       h.registry.Count(),
		"active_profile": h.profiles.ActiveID(),
	})
}

// ListServices lists all registered service definitions
func (h *Handlers) ListServices(c *gin.Context) {
	services := h.registry.List()
	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"count":    len(services),
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requestID := middleware.GetRequestID(c)
	appCtx := &types.Context{WindowID: req.WindowID}
	if requestID != "" {
		appCtx.RequestID = &requestID
	}

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// MetricsSummary returns aggregate metrics as JSON
func (h *Handlers) MetricsSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.metrics.CurrentSnapshot())
}
