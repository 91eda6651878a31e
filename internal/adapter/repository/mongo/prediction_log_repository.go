package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ressKim-io/intent-service/internal/domain/entity"
	"github.com/ressKim-io/intent-service/internal/domain/repository"
)

type predictionDocument struct {
	Text        string                              `bson:"text"`
	Owner       string                              `bson:"owner"`
	Predictions map[string]*entity.PredictionResult `bson:"predictions"`
	Timestamp   int64                               `bson:"timestamp"`
	CreatedAt   time.Time                           `bson:"created_at"`
}

// PredictionLogRepository appends prediction records to a MongoDB collection
type PredictionLogRepository struct {
	database   *mongo.Database
	collection *mongo.Collection
}

var _ repository.PredictionLogRepository = (*PredictionLogRepository)(nil)

// NewPredictionLogRepository creates a repository writing to collection in database
func NewPredictionLogRepository(database *mongo.Database, collection string) *PredictionLogRepository {
	return &PredictionLogRepository{
		database:   database,
		collection: database.Collection(collection),
	}
}

// EnsureIndexes creates the indexes used to browse the log by owner and time
func (r *PredictionLogRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "owner", Value: 1},
				{Key: "timestamp", Value: -1},
			},
		},
		{
			Keys: bson.D{
				{Key: "timestamp", Value: -1},
			},
		},
	}

	if _, err := r.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create indexes for %s: %w", r.collection.Name(), err)
	}
	return nil
}

func (r *PredictionLogRepository) Append(ctx context.Context, record *entity.PredictionRecord) error {
	if _, err := r.collection.InsertOne(ctx, toDocument(record)); err != nil {
		return fmt.Errorf("failed to insert prediction record: %w", err)
	}
	return nil
}

func (r *PredictionLogRepository) Ping(ctx context.Context) error {
	return r.database.Client().Ping(ctx, readpref.Primary())
}

func (r *PredictionLogRepository) Name() string {
	return r.database.Name()
}

// Collection returns the name of the collection records are written to
func (r *PredictionLogRepository) Collection() string {
	return r.collection.Name()
}

func toDocument(record *entity.PredictionRecord) *predictionDocument {
	return &predictionDocument{
		Text:        record.Text,
		Owner:       record.Owner,
		Predictions: record.Predictions,
		Timestamp:   record.Timestamp,
		CreatedAt:   record.CreatedAt(),
	}
}
