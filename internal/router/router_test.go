package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"interviewdesk/internal/domain"
	"interviewdesk/internal/handler"
	"interviewdesk/internal/router"
	"interviewdesk/mocks"
)

func setup() (*gin.Engine, *mocks.MockAnalysisService, *mocks.MockExportService) {
	gin.SetMode(gin.TestMode)
	analysis := new(mocks.MockAnalysisService)
	export := new(mocks.MockExportService)
	r := router.Setup(
		[]string{"https://app.example.com"},
		handler.NewWebHandler(analysis, 1024, "分析结果"),
		handler.NewAnalysisHandler(analysis, 1024),
		handler.NewExportHandler(export),
		handler.NewHealthHandler(analysis),
	)
	return r, analysis, export
}

func TestRouter_Health(t *testing.T) {
	r, analysis, _ := setup()
	analysis.On("Ready").Return(true)

	for _, path := range []string{"/healthz", "/readyz"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, path, http.NoBody)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	}
}

func TestRouter_IndexPage(t *testing.T) {
	r, _, _ := setup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "访谈结构整理工具")
}

func TestRouter_ExportRoute(t *testing.T) {
	r, _, export := setup()
	export.On("ExportCSV", mock.Anything, mock.Anything).Return(nil, domain.ErrTableNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/exports/csv", strings.NewReader(`{"markdown":""}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "https://app.example.com")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_Preflight(t *testing.T) {
	r, _, _ := setup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodOptions, "/api/v1/analyses", http.NoBody)
	req.Header.Set("Origin", "https://app.example.com")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
