package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/slidecoach/api/internal/cache"
	"github.com/slidecoach/api/internal/config"
	"github.com/slidecoach/api/internal/genai"
	"github.com/slidecoach/api/internal/server"
	"github.com/slidecoach/api/internal/telemetry"
	"go.uber.org/zap"
)

func main() {
	// Initialize context
	ctx := context.Background()

	// Local development config; absence is fine in deployed environments
	_ = godotenv.Load()

	// Initialize logger with stdout sync
	zapConfig := zap.NewProductionConfig()
	zapConfig.OutputPaths = []string{"stdout"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}
	logger, err := zapConfig.Build()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("slidecoach API starting...",
		zap.String("version", "0.1.0"),
		zap.String("environment", os.Getenv("GO_ENV")),
	)

	// Initialize Telemetry
	shutdownTelemetry, err := telemetry.InitTracer(ctx, "slidecoach-api")
	if err != nil {
		// Log but don't fail, as collector might be down
		logger.Error("failed to initialize telemetry", zap.Error(err))
	} else {
		defer func() {
			if err := shutdownTelemetry(ctx); err != nil {
				logger.Error("failed to shutdown telemetry", zap.Error(err))
			}
		}()
	}

	// Load configuration
	cfg := config.Load()

	if cfg.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY is not set; every outbound generation call will fail")
	}

	// Optional summary cache
	var summaryCache *cache.Redis
	if cfg.RedisURL != "" {
		summaryCache, err = cache.NewRedis(cfg.RedisURL)
		if err != nil {
			logger.Error("failed to connect to redis, continuing without cache", zap.Error(err))
		} else {
			defer summaryCache.Close()
			logger.Info("connected to redis")
		}
	}

	generator := genai.NewClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.Models, logger)
	logger.Info("model fallback chain configured", zap.Strings("models", cfg.Models))

	router := server.NewRouter(server.Deps{
		Config:    cfg,
		Generator: generator,
		Cache:     summaryCache,
		Logger:    logger,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("starting server", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited gracefully")
}
