package service

import (
	"context"

	"github.com/ressKim-io/intent-service/internal/domain/entity"
)

// Model is a loaded intent classifier
type Model interface {
	// Predict returns the top intent and the probability distribution for text
	Predict(ctx context.Context, text string) (*entity.PredictionResult, error)
}

// Closer is implemented by models that hold resources until process teardown
type Closer interface {
	Close() error
}

// HealthChecker is implemented by models backed by an external dependency
type HealthChecker interface {
	Health(ctx context.Context) error
}
