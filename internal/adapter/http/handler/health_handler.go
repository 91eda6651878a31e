package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/ressKim-io/intent-service/internal/domain/repository"
	"github.com/ressKim-io/intent-service/internal/domain/service"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	logRepo  repository.PredictionLogRepository
	redis    *redis.Client
	registry *service.Registry
}

// NewHealthHandler creates a new health handler. Any dependency may be nil.
func NewHealthHandler(logRepo repository.PredictionLogRepository, redis *redis.Client, registry *service.Registry) *HealthHandler {
	return &HealthHandler{
		logRepo:  logRepo,
		redis:    redis,
		registry: registry,
	}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
	Models     int               `json:"models"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	components := make(map[string]string)
	healthy := true

	// Check log store
	if h.logRepo != nil {
		if err := h.logRepo.Ping(ctx); err != nil {
			components["storage"] = "error: " + err.Error()
			healthy = false
		} else {
			components["storage"] = "ok"
		}
	} else {
		components["storage"] = "not configured"
	}

	// Check Redis
	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			components["redis"] = "error: " + err.Error()
			healthy = false
		} else {
			components["redis"] = "ok"
		}
	} else {
		components["redis"] = "not configured"
	}

	// Check models backed by an external server
	for _, name := range h.registry.Names() {
		m, _ := h.registry.Get(name)
		checker, ok := m.(service.HealthChecker)
		if !ok {
			continue
		}
		key := "model:" + name
		if err := checker.Health(ctx); err != nil {
			components[key] = "error: " + err.Error()
			healthy = false
		} else {
			components[key] = "ok"
		}
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if !healthy {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthStatus{
		Status:     status,
		Components: components,
		Models:     h.registry.Len(),
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if h.logRepo != nil {
		if err := h.logRepo.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "log store unreachable"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
