package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ressKim-io/intent-service/internal/domain/entity"
)

type stubModel struct {
	closed   bool
	closeErr error
}

func (m *stubModel) Predict(_ context.Context, _ string) (*entity.PredictionResult, error) {
	return entity.NewPredictionResult("stub", nil), nil
}

func (m *stubModel) Close() error {
	m.closed = true
	return m.closeErr
}

func TestNewRegistry(t *testing.T) {
	t.Run("names are sorted", func(t *testing.T) {
		r := NewRegistry(map[string]Model{
			"zeta":  &stubModel{},
			"alpha": &stubModel{},
			"mid":   &stubModel{},
		})

		assert.Equal(t, 3, r.Len())
		assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Names())
	})

	t.Run("nil models are excluded", func(t *testing.T) {
		r := NewRegistry(map[string]Model{"broken": nil, "ok": &stubModel{}})

		assert.Equal(t, []string{"ok"}, r.Names())
		_, found := r.Get("broken")
		assert.False(t, found)
	})

	t.Run("mutating the source map does not change the registry", func(t *testing.T) {
		src := map[string]Model{"a": &stubModel{}}
		r := NewRegistry(src)

		src["b"] = &stubModel{}
		delete(src, "a")

		assert.Equal(t, []string{"a"}, r.Names())
	})

	t.Run("names slice is a copy", func(t *testing.T) {
		r := NewRegistry(map[string]Model{"a": &stubModel{}})

		names := r.Names()
		names[0] = "changed"

		assert.Equal(t, []string{"a"}, r.Names())
	})
}

func TestEmptyRegistry(t *testing.T) {
	r := EmptyRegistry()

	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Names())
	assert.NoError(t, r.Close())
}

func TestRegistry_Close(t *testing.T) {
	a := &stubModel{}
	b := &stubModel{closeErr: errors.New("release failed")}
	r := NewRegistry(map[string]Model{"a": a, "b": b})

	err := r.Close()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "release failed")
	assert.True(t, a.closed)
	assert.True(t, b.closed)
}
