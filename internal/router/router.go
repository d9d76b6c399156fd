package router

import (
	"github.com/gin-gonic/gin"

	"interviewdesk/internal/handler"
	"interviewdesk/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	allowedOrigins []string,
	webH *handler.WebHandler,
	analysisH *handler.AnalysisHandler,
	exportH *handler.ExportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	r.SetHTMLTemplate(handler.Templates())

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// Browser pages
	r.GET("/", webH.Index)
	r.POST("/analyze", webH.Analyze)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.CORS(allowedOrigins))
	v1.OPTIONS("/*path", func(c *gin.Context) {})

	v1.POST("/analyses", analysisH.Create)

	exports := v1.Group("/exports")
	exports.POST("/xlsx", exportH.ExportXLSX)
	exports.POST("/csv", exportH.ExportCSV)

	return r
}
