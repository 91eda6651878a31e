package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ressKim-io/intent-service/internal/domain/entity"
	"github.com/ressKim-io/intent-service/internal/usecase"
)

// MockPredictionUsecase is a mock implementation of usecase.PredictionUsecase
type MockPredictionUsecase struct {
	mock.Mock
}

func (m *MockPredictionUsecase) Predict(ctx context.Context, input *usecase.PredictInput) (*usecase.PredictionOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.PredictionOutput), args.Error(1)
}

func (m *MockPredictionUsecase) Models() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockPredictionUsecase) Status(ctx context.Context) *usecase.StatusOutput {
	args := m.Called(ctx)
	return args.Get(0).(*usecase.StatusOutput)
}

// MockPredictionLogRepository is a mock implementation of repository.PredictionLogRepository
type MockPredictionLogRepository struct {
	mock.Mock
}

func (m *MockPredictionLogRepository) Append(ctx context.Context, record *entity.PredictionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockPredictionLogRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPredictionLogRepository) Name() string {
	args := m.Called()
	return args.String(0)
}
