package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ressKim-io/intent-service/internal/adapter/auth"
	"github.com/ressKim-io/intent-service/internal/adapter/http/router"
	"github.com/ressKim-io/intent-service/internal/adapter/model"
	"github.com/ressKim-io/intent-service/internal/domain/repository"
	"github.com/ressKim-io/intent-service/internal/domain/service"
	"github.com/ressKim-io/intent-service/internal/infrastructure/cache"
	"github.com/ressKim-io/intent-service/internal/infrastructure/config"
	"github.com/ressKim-io/intent-service/internal/infrastructure/logger"
	"github.com/ressKim-io/intent-service/internal/infrastructure/metrics"
	"github.com/ressKim-io/intent-service/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log, cfg.App)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Open the prediction log store (continue without it; /status reports the failure)
	store, err := openLogStore(context.Background(), cfg, log)
	if err != nil {
		log.Error("Failed to open log store, predictions will fail", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	} else {
		log.Info("Log store ready", zap.String("driver", cfg.Storage.Driver), zap.String("collection", cfg.App.LogCollection()))
	}

	// Initialize Redis (optional, continue without it)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Warn("Failed to connect to Redis, continuing without token cache", zap.Error(err))
			redisClient = nil
		} else {
			log.Info("Connected to Redis")
		}
	}

	// Auth gate, chosen once for the runtime mode
	var verifier service.TokenVerifier = auth.NewJWTVerifier(cfg.Auth)
	if redisClient != nil {
		verifier = auth.NewCachedVerifier(verifier, auth.NewRedisTokenCache(redisClient), cfg.Auth.CacheTTL, log)
	}
	gate := auth.NewGate(cfg.App, verifier, log)
	switch {
	case cfg.App.IsDev():
		log.Warn("Authentication bypassed in dev mode", zap.String("owner", auth.DevOwner))
	case cfg.Auth.JWTSecret == "":
		log.Warn("No JWT secret configured, authenticated requests will be rejected")
	}

	// Load models
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.Models.LoadTimeout)
	registry := model.NewLoader(cfg.Models.Extension, cfg.Models.LoadTimeout, log).LoadAll(loadCtx, cfg.Models.Dir)
	cancelLoad()
	defer func() {
		if err := registry.Close(); err != nil {
			log.Warn("Failed to release models", zap.Error(err))
		}
	}()

	// Metrics
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(promRegistry)
	m.SetModelsLoaded(registry.Len())

	// Usecases
	var logRepo repository.PredictionLogRepository
	if store != nil {
		logRepo = store.repo
	}
	predictionUC := usecase.NewPredictionUsecase(usecase.NewAggregator(registry, m), logRepo)

	// Setup router
	r := router.Setup(router.Dependencies{
		App:            cfg.App,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		PredictionUC:   predictionUC,
		Gate:           gate,
		Registry:       registry,
		LogRepo:        logRepo,
		Redis:          redisClient,
		Metrics:        m,
		Gatherer:       promRegistry,
		Logger:         log,
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("address", addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		log.Error("Server failed", zap.Error(err))
	}

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// Close log store connection
	if store != nil {
		if err := store.close(ctx); err != nil {
			log.Warn("Failed to close log store", zap.Error(err))
		}
	}

	// Close Redis connection
	if redisClient != nil {
		_ = redisClient.Close()
	}

	log.Info("Server exited")
	return nil
}
