package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ressKim-io/intent-service/internal/domain/entity"
	"github.com/ressKim-io/intent-service/internal/domain/repository"
)

// Error definitions for prediction usecase
var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrInferenceFailed = errors.New("inference failed")
	ErrStorageFailed   = errors.New("storage failed")
)

// Prediction outcomes reported to the Observer
const (
	OutcomeSuccess        = "success"
	OutcomeInferenceError = "inference_error"
	OutcomeStorageError   = "storage_error"
)

const statusTimeout = 5 * time.Second

// PredictInput represents the input for a prediction
type PredictInput struct {
	Text  string
	Owner string
}

// PredictionResultOutput represents one model's prediction
type PredictionResultOutput struct {
	TopIntent string             `json:"top_intent"`
	AllProbs  map[string]float64 `json:"all_probs"`
}

// PredictionOutput represents the aggregated prediction returned to callers
type PredictionOutput struct {
	Text        string                             `json:"text"`
	Owner       string                             `json:"owner"`
	Predictions map[string]*PredictionResultOutput `json:"predictions"`
	Timestamp   int64                              `json:"timestamp"`
}

// StatusOutput represents the log store status
type StatusOutput struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
	Message  string `json:"message,omitempty"`
}

// PredictionUsecase defines the interface for prediction business logic
type PredictionUsecase interface {
	Predict(ctx context.Context, input *PredictInput) (*PredictionOutput, error)
	Models() []string
	Status(ctx context.Context) *StatusOutput
}

// Option configures a prediction usecase
type Option func(*predictionUsecase)

// WithClock overrides the time source used for record timestamps
func WithClock(now func() time.Time) Option {
	return func(u *predictionUsecase) {
		u.now = now
	}
}

type predictionUsecase struct {
	aggregator *Aggregator
	logRepo    repository.PredictionLogRepository
	observer   Observer
	now        func() time.Time
}

// NewPredictionUsecase creates a new prediction usecase
func NewPredictionUsecase(aggregator *Aggregator, logRepo repository.PredictionLogRepository, opts ...Option) PredictionUsecase {
	if aggregator == nil {
		aggregator = NewAggregator(nil, nil)
	}
	u := &predictionUsecase{
		aggregator: aggregator,
		logRepo:    logRepo,
		observer:   aggregator.observer,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *predictionUsecase) Predict(ctx context.Context, input *PredictInput) (*PredictionOutput, error) {
	if input == nil {
		return nil, ErrInvalidRequest
	}

	predictions, err := u.aggregator.PredictAll(ctx, input.Text)
	if err != nil {
		u.observer.ObservePrediction(OutcomeInferenceError)
		return nil, err
	}

	record := entity.NewPredictionRecord(input.Text, input.Owner, predictions, u.now())

	if u.logRepo == nil {
		u.observer.ObservePrediction(OutcomeStorageError)
		return nil, fmt.Errorf("%w: log store not configured", ErrStorageFailed)
	}
	if err := u.logRepo.Append(ctx, record); err != nil {
		u.observer.ObservePrediction(OutcomeStorageError)
		return nil, fmt.Errorf("%w: %w", ErrStorageFailed, err)
	}

	u.observer.ObservePrediction(OutcomeSuccess)
	return toPredictionOutput(record), nil
}

func (u *predictionUsecase) Models() []string {
	return u.aggregator.Registry().Names()
}

func (u *predictionUsecase) Status(ctx context.Context) *StatusOutput {
	if u.logRepo == nil {
		return &StatusOutput{Status: "error", Message: "log store not configured"}
	}

	ctx, cancel := context.WithTimeout(ctx, statusTimeout)
	defer cancel()

	if err := u.logRepo.Ping(ctx); err != nil {
		return &StatusOutput{Status: "error", Message: err.Error()}
	}
	return &StatusOutput{Status: "ok", Database: u.logRepo.Name()}
}

func toPredictionOutput(r *entity.PredictionRecord) *PredictionOutput {
	predictions := make(map[string]*PredictionResultOutput, len(r.Predictions))
	for name, p := range r.Predictions {
		predictions[name] = &PredictionResultOutput{
			TopIntent: p.TopIntent,
			AllProbs:  p.AllProbs,
		}
	}
	return &PredictionOutput{
		Text:        r.Text,
		Owner:       r.Owner,
		Predictions: predictions,
		Timestamp:   r.Timestamp,
	}
}
