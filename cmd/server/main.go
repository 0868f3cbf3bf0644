package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"fakenews-detector/internal/agents"
	"fakenews-detector/internal/clients"
	"fakenews-detector/internal/config"
	"fakenews-detector/internal/handlers"
	"fakenews-detector/internal/logger"
	"fakenews-detector/internal/middleware"
	"fakenews-detector/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Setup panic recovery
	defer func() {
		if r := recover(); r != nil {
			logger.Log.WithFields(map[string]interface{}{
				"panic":       r,
				"stack_trace": logger.GetStackTrace(0),
			}).Fatal("Application panicked")
		}
	}()

	logger.Log.Info("Starting Fake News Detector server")

	cfg, err := config.Load()
	if err != nil {
		logger.LogErrorWithStack(err, map[string]interface{}{
			"operation": "config_load",
		})
		logger.Log.WithError(err).Fatal("Failed to load configuration")
	}
	logger.SetLevel(cfg.LogLevel)
	logger.Log.WithFields(map[string]interface{}{
		"log_level": cfg.LogLevel,
		"provider":  cfg.Provider,
		"model":     cfg.Model(),
	}).Info("Configuration loaded successfully")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	detector := buildAgent(ctx, cfg)
	analysisService := services.NewAnalysisService(cfg, detector)
	analysisHandler := handlers.NewAnalysisHandler(analysisService)

	router := setupRouter(cfg, analysisHandler)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Log.WithFields(map[string]interface{}{
			"port":       cfg.ServerPort,
			"health_url": "http://localhost:" + cfg.ServerPort + "/api/health",
		}).Info("Server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.LogErrorWithStack(err, map[string]interface{}{
				"operation": "server_listen",
				"port":      cfg.ServerPort,
			})
			logger.Log.WithError(err).Fatal("Failed to start server")
		}
	}()

	<-ctx.Done()
	stop()
	logger.Log.Info("Shutdown signal received, starting graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Fatal("Server forced to shutdown")
	}

	logger.Log.Info("Server gracefully stopped")
}

// buildAgent returns nil when no usable key is configured. The server still
// starts and answers /api/analyze with the misconfiguration error.
func buildAgent(ctx context.Context, cfg *config.Config) agents.Agent {
	if !cfg.UpstreamConfigured() {
		logger.Log.WithField("env", cfg.KeyEnvName()).
			Warn("API key not configured, analysis requests will fail until it is set")
		return nil
	}

	generator, err := clients.NewTextGenerator(ctx, cfg)
	if err != nil {
		logger.LogErrorWithStack(err, map[string]interface{}{
			"operation": "generator_init",
			"provider":  cfg.Provider,
		})
		logger.Log.WithError(err).Warn("Upstream client unavailable, analysis requests will fail")
		return nil
	}

	return agents.NewDetectorAgent(generator)
}

func setupRouter(cfg *config.Config, analysisHandler *handlers.AnalysisHandler) *gin.Engine {
	if cfg.LogLevel == "DEBUG" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.Recovery())

	api := router.Group("/api")
	{
		api.GET("/health", analysisHandler.Health)
		api.POST("/analyze", analysisHandler.Analyze)
	}

	return router
}
