package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ressKim-io/intent-service/internal/domain/entity"
	"github.com/ressKim-io/intent-service/internal/domain/service"
)

// Observer receives inference and prediction outcomes, typically for metrics
type Observer interface {
	ObserveInference(model string, duration time.Duration, err error)
	ObservePrediction(outcome string)
}

type nopObserver struct{}

func (nopObserver) ObserveInference(string, time.Duration, error) {}
func (nopObserver) ObservePrediction(string)                      {}

// Aggregator runs every model in a registry against one text
type Aggregator struct {
	registry *service.Registry
	observer Observer
}

// NewAggregator creates an Aggregator over registry. A nil observer is allowed.
func NewAggregator(registry *service.Registry, observer Observer) *Aggregator {
	if registry == nil {
		registry = service.EmptyRegistry()
	}
	if observer == nil {
		observer = nopObserver{}
	}
	return &Aggregator{registry: registry, observer: observer}
}

// PredictAll calls each model in registry order and keys the results by model name.
// The first failing model aborts the call; partial results are discarded.
func (a *Aggregator) PredictAll(ctx context.Context, text string) (map[string]*entity.PredictionResult, error) {
	predictions := make(map[string]*entity.PredictionResult, a.registry.Len())

	for _, name := range a.registry.Names() {
		model, _ := a.registry.Get(name)

		start := time.Now()
		result, err := model.Predict(ctx, text)
		switch {
		case err != nil:
		case result == nil:
			err = fmt.Errorf("empty result")
		default:
			err = result.Validate()
		}
		a.observer.ObserveInference(name, time.Since(start), err)
		if err != nil {
			return nil, fmt.Errorf("%w: model %q: %w", ErrInferenceFailed, name, err)
		}

		predictions[name] = result
	}

	return predictions, nil
}

// Registry returns the registry the aggregator runs against
func (a *Aggregator) Registry() *service.Registry {
	return a.registry
}

// PredictAll runs every model in registry against text without observation
func PredictAll(ctx context.Context, registry *service.Registry, text string) (map[string]*entity.PredictionResult, error) {
	return NewAggregator(registry, nil).PredictAll(ctx, text)
}
