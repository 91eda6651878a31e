package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ressKim-io/intent-service/internal/domain/entity"
	"github.com/ressKim-io/intent-service/internal/domain/repository"
)

// PredictionLogRow is the relational form of a prediction record
type PredictionLogRow struct {
	ID          uuid.UUID                           `gorm:"type:uuid;primary_key"`
	Text        string                              `gorm:"type:text;not null"`
	Owner       string                              `gorm:"type:varchar(255);not null;index"`
	Predictions map[string]*entity.PredictionResult `gorm:"type:jsonb;serializer:json;not null"`
	Timestamp   int64                               `gorm:"not null;index"`
	CreatedAt   time.Time                           `gorm:"autoCreateTime"`
}

type predictionLogRepository struct {
	db     *gorm.DB
	table  string
	dbName string
}

// NewPredictionLogRepository creates a repository appending to table
func NewPredictionLogRepository(db *gorm.DB, table, dbName string) repository.PredictionLogRepository {
	return &predictionLogRepository{db: db, table: table, dbName: dbName}
}

// AutoMigrate creates or updates the prediction log table
func AutoMigrate(db *gorm.DB, table string) error {
	return db.Table(table).AutoMigrate(&PredictionLogRow{})
}

func (r *predictionLogRepository) Append(ctx context.Context, record *entity.PredictionRecord) error {
	if err := r.db.WithContext(ctx).Table(r.table).Create(toRow(record)).Error; err != nil {
		return fmt.Errorf("failed to insert prediction record: %w", err)
	}
	return nil
}

func (r *predictionLogRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *predictionLogRepository) Name() string {
	return r.dbName
}

func toRow(record *entity.PredictionRecord) *PredictionLogRow {
	return &PredictionLogRow{
		ID:          uuid.New(),
		Text:        record.Text,
		Owner:       record.Owner,
		Predictions: record.Predictions,
		Timestamp:   record.Timestamp,
		CreatedAt:   record.CreatedAt(),
	}
}
