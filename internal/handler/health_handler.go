package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"interviewdesk/internal/service"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	analysis service.AnalysisService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(analysis service.AnalysisService) *HealthHandler {
	return &HealthHandler{analysis: analysis}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if !h.analysis.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "no language model provider configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
