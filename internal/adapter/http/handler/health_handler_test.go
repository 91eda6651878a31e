package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ressKim-io/intent-service/internal/domain/entity"
	"github.com/ressKim-io/intent-service/internal/domain/service"
)

type checkedModel struct {
	err error
}

func (m checkedModel) Predict(context.Context, string) (*entity.PredictionResult, error) {
	return entity.NewPredictionResult("greet", nil), nil
}

func (m checkedModel) Health(context.Context) error {
	return m.err
}

type localModel struct{}

func (localModel) Predict(context.Context, string) (*entity.PredictionResult, error) {
	return entity.NewPredictionResult("greet", nil), nil
}

func TestHealthHandler_Health(t *testing.T) {
	t.Run("healthy when no dependencies", func(t *testing.T) {
		handler := NewHealthHandler(nil, nil, nil)

		router := gin.New()
		router.GET("/health", handler.Health)

		req, _ := http.NewRequest(http.MethodGet, "/health", http.NoBody)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var status HealthStatus
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
		assert.Equal(t, "healthy", status.Status)
		assert.Equal(t, "not configured", status.Components["storage"])
		assert.Equal(t, "not configured", status.Components["redis"])
		assert.Equal(t, 0, status.Models)
	})

	t.Run("unhealthy when log store ping fails", func(t *testing.T) {
		repo := new(MockPredictionLogRepository)
		repo.On("Ping", mock.Anything).Return(errors.New("no reachable servers"))
		handler := NewHealthHandler(repo, nil, nil)

		router := gin.New()
		router.GET("/health", handler.Health)

		req, _ := http.NewRequest(http.MethodGet, "/health", http.NoBody)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var status HealthStatus
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
		assert.Equal(t, "unhealthy", status.Status)
		assert.Contains(t, status.Components["storage"], "no reachable servers")
		repo.AssertExpectations(t)
	})
}

func TestHealthHandler_HealthReportsRemoteModels(t *testing.T) {
	t.Run("all remote models healthy", func(t *testing.T) {
		registry := service.NewRegistry(map[string]service.Model{
			"remote": checkedModel{},
			"local":  localModel{},
		})
		handler := NewHealthHandler(nil, nil, registry)

		router := gin.New()
		router.GET("/health", handler.Health)

		req, _ := http.NewRequest(http.MethodGet, "/health", http.NoBody)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var status HealthStatus
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
		assert.Equal(t, "ok", status.Components["model:remote"])
		assert.NotContains(t, status.Components, "model:local")
		assert.Equal(t, 2, status.Models)
	})

	t.Run("unhealthy remote model fails the check", func(t *testing.T) {
		registry := service.NewRegistry(map[string]service.Model{
			"remote": checkedModel{err: errors.New("model server has no model loaded")},
		})
		handler := NewHealthHandler(nil, nil, registry)

		router := gin.New()
		router.GET("/health", handler.Health)

		req, _ := http.NewRequest(http.MethodGet, "/health", http.NoBody)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var status HealthStatus
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
		assert.Equal(t, "unhealthy", status.Status)
		assert.Contains(t, status.Components["model:remote"], "no model loaded")
	})
}

func TestHealthHandler_Ready(t *testing.T) {
	t.Run("ready when log store answers", func(t *testing.T) {
		repo := new(MockPredictionLogRepository)
		repo.On("Ping", mock.Anything).Return(nil)
		handler := NewHealthHandler(repo, nil, nil)

		router := gin.New()
		router.GET("/ready", handler.Ready)

		req, _ := http.NewRequest(http.MethodGet, "/ready", http.NoBody)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ready")
	})

	t.Run("not ready when log store is down", func(t *testing.T) {
		repo := new(MockPredictionLogRepository)
		repo.On("Ping", mock.Anything).Return(errors.New("timeout"))
		handler := NewHealthHandler(repo, nil, nil)

		router := gin.New()
		router.GET("/ready", handler.Ready)

		req, _ := http.NewRequest(http.MethodGet, "/ready", http.NoBody)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "log store unreachable")
	})
}
