package handler

import (
	"github.com/gin-gonic/gin"

	"interviewdesk/internal/service"
)

// AnalysisHandler handles the JSON analysis endpoint.
type AnalysisHandler struct {
	analysisService service.AnalysisService
	maxBytes        int64
}

// NewAnalysisHandler creates a new AnalysisHandler. maxBytes caps each upload.
func NewAnalysisHandler(analysisService service.AnalysisService, maxBytes int64) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService, maxBytes: maxBytes}
}

// Create handles POST /api/v1/analyses
// Multipart fields: target, transcript, outline.
func (h *AnalysisHandler) Create(c *gin.Context) {
	input, err := analysisInput(c, h.maxBytes)
	if err != nil {
		HandleError(c, err)
		return
	}

	result, err := h.analysisService.Analyze(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
