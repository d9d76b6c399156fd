package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"interviewdesk/internal/config"
	"interviewdesk/internal/docextract"
	"interviewdesk/internal/handler"
	"interviewdesk/internal/llm"
	_ "interviewdesk/internal/llm/claude"
	_ "interviewdesk/internal/llm/deepseek"
	_ "interviewdesk/internal/llm/openai"
	"interviewdesk/internal/router"
	"interviewdesk/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log.SetFlags(cfg.Log.Flags())
	gin.SetMode(cfg.Log.GinMode(cfg.Server.Environment))

	// A missing key leaves the server up but not ready.
	completer, err := llm.NewFromConfig(&cfg.LLM)
	if err != nil {
		log.Printf("llm provider unavailable: %v", err)
	}

	// Initialize services
	extractor := docextract.NewExtractor(cfg.Upload.MaxBytes())
	analysisSvc := service.NewAnalysisService(extractor, completer, cfg.LLM.PrimaryConfig().Provider)
	exportSvc := service.NewExportService(&cfg.Export)

	// Initialize handlers
	webH := handler.NewWebHandler(analysisSvc, cfg.Upload.MaxBytes(), cfg.Export.Filename)
	analysisH := handler.NewAnalysisHandler(analysisSvc, cfg.Upload.MaxBytes())
	exportH := handler.NewExportHandler(exportSvc)
	healthH := handler.NewHealthHandler(analysisSvc)

	// Setup router
	r := router.Setup(cfg.CORS.AllowedOrigins, webH, analysisH, exportH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Printf("Received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
