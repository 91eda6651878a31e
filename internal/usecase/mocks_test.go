package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ressKim-io/intent-service/internal/domain/entity"
)

// MockModel is a mock implementation of service.Model
type MockModel struct {
	mock.Mock
}

func (m *MockModel) Predict(ctx context.Context, text string) (*entity.PredictionResult, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PredictionResult), args.Error(1)
}

// MockPredictionLogRepository is a mock implementation of PredictionLogRepository
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

type recordingObserver struct {
	mu          sync.Mutex
	inferences  map[string]error
	predictions []string
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{inferences: map[string]error{}}
}

func (o *recordingObserver) ObserveInference(model string, _ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.inferences[model] = err
}

func (o *recordingObserver) ObservePrediction(outcome string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.predictions = append(o.predictions, outcome)
}
