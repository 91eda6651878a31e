package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	mongorepo "github.com/ressKim-io/intent-service/internal/adapter/repository/mongo"
	"github.com/ressKim-io/intent-service/internal/adapter/repository/postgres"
	"github.com/ressKim-io/intent-service/internal/domain/repository"
	"github.com/ressKim-io/intent-service/internal/infrastructure/config"
	"github.com/ressKim-io/intent-service/internal/infrastructure/database"
)

// Storage drivers accepted by storage.driver
const (
	driverMongo    = "mongo"
	driverPostgres = "postgres"
)

type logStore struct {
	repo  repository.PredictionLogRepository
	close func(ctx context.Context) error
}

// openLogStore connects the configured driver and prepares the {ENV}_intent_logs sink.
// Index and migration failures are logged; the store stays usable.
func openLogStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (*logStore, error) {
	collection := cfg.App.LogCollection()

	switch cfg.Storage.Driver {
	case driverMongo, "":
		client, err := database.NewMongoClient(ctx, &cfg.Mongo)
		if err != nil {
			return nil, err
		}

		repo := mongorepo.NewPredictionLogRepository(client.Database(cfg.Mongo.Database), collection)

		indexCtx, cancel := context.WithTimeout(ctx, cfg.Mongo.ConnectTimeout)
		defer cancel()
		if err := repo.EnsureIndexes(indexCtx); err != nil {
			log.Warn("Failed to create log indexes", zap.String("collection", repo.Collection()), zap.Error(err))
		}
		log.Info("Prediction log collection selected",
			zap.String("database", repo.Name()),
			zap.String("collection", repo.Collection()),
		)

		return &logStore{repo: repo, close: client.Disconnect}, nil

	case driverPostgres:
		db, err := database.NewPostgresDB(&cfg.Database, cfg.Log.Level)
		if err != nil {
			return nil, err
		}

		if err := postgres.AutoMigrate(db, collection); err != nil {
			log.Warn("Failed to run log table migration", zap.String("table", collection), zap.Error(err))
		}

		return &logStore{
			repo: postgres.NewPredictionLogRepository(db, collection, cfg.Database.DBName),
			close: func(context.Context) error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.Close()
			},
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
