package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ressKim-io/intent-service/internal/domain/entity"
	"github.com/ressKim-io/intent-service/internal/domain/service"
)

var (
	errEmptyIntent    = errors.New("model server returned no top_intent")
	errModelNotLoaded = errors.New("model server has no model loaded")
)

// RemoteModel adapts ModelServerClient to the Model interface
type RemoteModel struct {
	client *ModelServerClient
}

var (
	_ service.Model         = (*RemoteModel)(nil)
	_ service.Closer        = (*RemoteModel)(nil)
	_ service.HealthChecker = (*RemoteModel)(nil)
)

// NewRemoteModel creates a new RemoteModel
func NewRemoteModel(client *ModelServerClient) *RemoteModel {
	return &RemoteModel{client: client}
}

// Predict asks the model server for the intent of text
func (m *RemoteModel) Predict(ctx context.Context, text string) (*entity.PredictionResult, error) {
	resp, err := m.client.Predict(ctx, text, uuid.New().String())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", m.client.BaseURL(), err)
	}
	if resp.TopIntent == "" {
		return nil, fmt.Errorf("%s: %w", m.client.BaseURL(), errEmptyIntent)
	}

	return entity.NewPredictionResult(resp.TopIntent, resp.AllProbs), nil
}

// Health reports whether the model server is up and has its model loaded
func (m *RemoteModel) Health(ctx context.Context) error {
	resp, err := m.client.Health(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", m.client.BaseURL(), err)
	}
	if !resp.ModelLoaded {
		return fmt.Errorf("%s: %w (status %q)", m.client.BaseURL(), errModelNotLoaded, resp.Status)
	}
	return nil
}

// Close releases the underlying HTTP connections
func (m *RemoteModel) Close() error {
	return m.client.Close()
}
