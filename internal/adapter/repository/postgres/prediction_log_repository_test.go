package postgres

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ressKim-io/intent-service/internal/domain/entity"
)

func TestToRow(t *testing.T) {
	now := time.Date(2026, 1, 18, 12, 0, 0, 0, time.UTC)
	record := entity.NewPredictionRecord("hello", "alice", map[string]*entity.PredictionResult{
		"modelA": entity.NewPredictionResult("greet", map[string]float64{"greet": 0.9}),
	}, now)

	row := toRow(record)

	assert.NotEqual(t, uuid.Nil, row.ID)
	assert.Equal(t, "hello", row.Text)
	assert.Equal(t, "alice", row.Owner)
	assert.Equal(t, now.Unix(), row.Timestamp)
	assert.Equal(t, now, row.CreatedAt)
	assert.Equal(t, "greet", row.Predictions["modelA"].TopIntent)
}

func TestToRow_UniqueIDs(t *testing.T) {
	record := entity.NewPredictionRecord("", "alice", nil, time.Now())

	assert.NotEqual(t, toRow(record).ID, toRow(record).ID)
}

func TestNewPredictionLogRepository_Name(t *testing.T) {
	repo := NewPredictionLogRepository(nil, "PROD_intent_logs", "intent")

	assert.Equal(t, "intent", repo.Name())
}
