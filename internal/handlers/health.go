package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/slidecoach/api/internal/cache"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	cache  *cache.Redis // may be nil
	models []string
	hasKey bool
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(c *cache.Redis, models []string, hasKey bool) *HealthHandler {
	return &HealthHandler{cache: c, models: models, hasKey: hasKey}
}

// Health returns basic health status
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "slidecoach-api",
		"version": "0.1.0",
	})
}

// DeepHealth returns health status with dependency checks
func (h *HealthHandler) DeepHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	deps := make(map[string]string)
	allHealthy := true

	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			deps["redis"] = "unhealthy: " + err.Error()
			allHealthy = false
		} else {
			deps["redis"] = "healthy"
		}
	} else {
		deps["redis"] = "not configured"
	}

	if h.hasKey {
		deps["generative_api"] = "configured"
	} else {
		// Startup tolerates a missing credential; every outbound call will fail.
		deps["generative_api"] = "missing credential"
		allHealthy = false
	}

	status := "healthy"
	code := http.StatusOK
	if !allHealthy {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":       status,
		"service":      "slidecoach-api",
		"models":       h.models,
		"dependencies": deps,
	})
}
