package handler

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"interviewdesk/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

// WebHandler serves the browser upload form and result page.
type WebHandler struct {
	analysisService service.AnalysisService
	maxBytes        int64
	filename        string
}

// NewWebHandler creates a new WebHandler. filename is the default download name.
func NewWebHandler(analysisService service.AnalysisService, maxBytes int64, filename string) *WebHandler {
	return &WebHandler{analysisService: analysisService, maxBytes: maxBytes, filename: filename}
}

// Index handles GET /
func (h *WebHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// Analyze handles POST /analyze
func (h *WebHandler) Analyze(c *gin.Context) {
	target := c.PostForm("target")

	input, err := analysisInput(c, h.maxBytes)
	if err != nil {
		h.renderError(c, target, err)
		return
	}

	result, err := h.analysisService.Analyze(c.Request.Context(), input)
	if err != nil {
		h.renderError(c, target, err)
		return
	}

	c.HTML(http.StatusOK, "result.html", gin.H{
		"Result":   result,
		"Answer":   template.HTML(result.HTML), //nolint:gosec // mdrender drops raw HTML and unsafe links
		"Filename": h.filename,
	})
}

func (h *WebHandler) renderError(c *gin.Context, target string, err error) {
	status, _, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	c.HTML(status, "index.html", gin.H{"Error": msg, "Target": target})
}
