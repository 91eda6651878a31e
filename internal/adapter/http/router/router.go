package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ressKim-io/intent-service/internal/adapter/http/handler"
	"github.com/ressKim-io/intent-service/internal/adapter/http/middleware"
	"github.com/ressKim-io/intent-service/internal/domain/repository"
	"github.com/ressKim-io/intent-service/internal/domain/service"
	"github.com/ressKim-io/intent-service/internal/infrastructure/config"
	"github.com/ressKim-io/intent-service/internal/infrastructure/metrics"
	"github.com/ressKim-io/intent-service/internal/usecase"
)

// Dependencies are the components the HTTP surface is built from.
// LogRepo, Redis, Metrics and Gatherer may be nil.
type Dependencies struct {
	App            config.AppConfig
	AllowedOrigins []string
	PredictionUC   usecase.PredictionUsecase
	Gate           service.AuthGate
	Registry       *service.Registry
	LogRepo        repository.PredictionLogRepository
	Redis          *redis.Client
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	Logger         *zap.Logger
}

// Setup creates and configures the Gin router
func Setup(deps Dependencies) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS(deps.AllowedOrigins...))
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
	}

	// Health endpoints
	healthHandler := handler.NewHealthHandler(deps.LogRepo, deps.Redis, deps.Registry)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	} else {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Initialize handlers
	serviceHandler := handler.NewServiceHandler(deps.App.Name, deps.App.Env, deps.PredictionUC)
	predictionHandler := handler.NewPredictionHandler(deps.PredictionUC)

	router.GET("/", serviceHandler.Root)
	router.GET("/status", serviceHandler.Status)
	router.GET("/models", predictionHandler.Models)

	// Authenticated routes
	authed := router.Group("", middleware.RequireOwner(deps.Gate, logger))
	{
		authed.POST("/predict", predictionHandler.Predict)
	}

	return router
}
