package repository

import (
	"context"

	"github.com/ressKim-io/intent-service/internal/domain/entity"
)

// PredictionLogRepository defines the append-only store for prediction records
type PredictionLogRepository interface {
	// Append persists one record
	Append(ctx context.Context, record *entity.PredictionRecord) error

	// Ping checks that the underlying store is reachable
	Ping(ctx context.Context) error

	// Name returns the database name reported by the status check
	Name() string
}
