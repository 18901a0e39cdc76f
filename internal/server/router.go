package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/slidecoach/api/internal/cache"
	"github.com/slidecoach/api/internal/config"
	"github.com/slidecoach/api/internal/handlers"
	"github.com/slidecoach/api/internal/middleware"
	"go.uber.org/zap"
)

// Deps carries everything the router needs, built once at startup.
type Deps struct {
	Config    *config.Config
	Generator handlers.Generator
	Cache     *cache.Redis // nil when REDIS_URL is unset
	Logger    *zap.Logger
}

// NewRouter wires handlers with the full middleware chain.
func NewRouter(d Deps) *gin.Engine {
	if d.Config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery(d.Logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(d.Logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(d.Config.AllowedOrigin))

	healthHandler := handlers.NewHealthHandler(d.Cache, d.Config.Models, d.Config.GeminiAPIKey != "")
	router.GET("/health", healthHandler.Health)
	router.GET("/health/deep", healthHandler.DeepHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	chatHandler := handlers.NewChatHandler(d.Generator, d.Logger)
	var summaryCache handlers.SummaryCache
	if d.Cache != nil {
		summaryCache = d.Cache
	}
	summaryHandler := handlers.NewSummaryHandler(d.Generator, summaryCache, d.Logger)
	polishHandler := handlers.NewPolishHandler(d.Generator, d.Logger)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RateLimitMiddleware(middleware.NewRateLimiter(60, 6, time.Minute)))
	{
		v1.POST("/chat", chatHandler.Chat)
		v1.POST("/summary", summaryHandler.Summarize)
		v1.POST("/polish-sentence", polishHandler.Polish)
	}

	router.NoRoute(func(c *gin.Context) {
		middleware.NotFound(c, "Route not found")
	})

	return router
}
