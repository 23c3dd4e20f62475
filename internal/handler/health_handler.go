package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	orchestratorReady bool
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(orchestratorReady bool) *HealthHandler {
	return &HealthHandler{orchestratorReady: orchestratorReady}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "superclaims"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if !h.orchestratorReady {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":       "unavailable",
			"orchestrator": "failed",
			"error":        "claim orchestrator not initialized; check API key configuration",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":       "healthy",
		"orchestrator": "initialized",
		"agents": gin.H{
			"classifier": "ready",
			"bill":       "ready",
			"discharge":  "ready",
			"id_card":    "ready",
			"validator":  "ready",
		},
	})
}
