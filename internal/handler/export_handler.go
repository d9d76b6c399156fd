package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"interviewdesk/internal/domain"
	"interviewdesk/internal/service"
)

// exportRequest is accepted as JSON or as a form. Forms carry only markdown.
type exportRequest struct {
	Markdown string              `json:"markdown" form:"markdown"`
	Table    *domain.ParsedTable `json:"table" form:"-"`
	Filename string              `json:"filename" form:"filename"`
	Sheet    string              `json:"sheet" form:"sheet"`
}

// ExportHandler handles table download endpoints.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportXLSX handles POST /api/v1/exports/xlsx
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	h.export(c, h.exportService.ExportXLSX)
}

// ExportCSV handles POST /api/v1/exports/csv
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	h.export(c, h.exportService.ExportCSV)
}

type exportFunc func(ctx context.Context, input *service.ExportInput) (*domain.ExportArtifact, error)

func (h *ExportHandler) export(c *gin.Context, fn exportFunc) {
	var req exportRequest
	if err := c.ShouldBind(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	artifact, err := fn(c.Request.Context(), &service.ExportInput{
		Markdown: req.Markdown,
		Table:    req.Table,
		Filename: req.Filename,
		Sheet:    req.Sheet,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	sendAttachment(c, artifact)
}
