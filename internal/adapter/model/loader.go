package model

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ressKim-io/intent-service/internal/adapter/client"
	"github.com/ressKim-io/intent-service/internal/domain/service"
)

// LoadError describes an artifact that could not be loaded
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load model %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Loader builds a Registry from the artifacts in a directory
type Loader struct {
	extension    string
	readyTimeout time.Duration
	logger       *zap.Logger
}

// NewLoader creates a Loader for files ending in extension
func NewLoader(extension string, readyTimeout time.Duration, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	if readyTimeout <= 0 {
		readyTimeout = defaultRemoteTimeout
	}
	return &Loader{
		extension:    extension,
		readyTimeout: readyTimeout,
		logger:       logger,
	}
}

// LoadAll loads every artifact in dir. Artifacts that fail are logged and skipped;
// an unreadable directory yields an empty registry.
func (l *Loader) LoadAll(ctx context.Context, dir string) *service.Registry {
	entries, err := os.ReadDir(dir)
	if err != nil {
		l.logger.Error("Failed to read model directory", zap.String("dir", dir), zap.Error(err))
		return service.EmptyRegistry()
	}

	models := make(map[string]service.Model)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), l.extension) {
			continue
		}

		name := ModelName(entry.Name(), l.extension)
		path := filepath.Join(dir, entry.Name())

		m, err := l.LoadFile(ctx, path)
		if err == nil && name == "" {
			err = &LoadError{Path: path, Err: fmt.Errorf("empty model name")}
		}
		if err != nil {
			l.logger.Warn("Skipping model artifact", zap.String("model", name), zap.Error(err))
			continue
		}

		models[name] = m
		l.logger.Info("Loaded model", zap.String("model", name), zap.String("path", path))
	}

	registry := service.NewRegistry(models)
	l.logger.Info("Models loaded", zap.Int("count", registry.Len()), zap.Strings("models", registry.Names()))
	return registry
}

// LoadFile loads a single artifact
func (l *Loader) LoadFile(ctx context.Context, path string) (service.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	artifact, err := DecodeArtifact(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	m, err := l.build(ctx, artifact)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return m, nil
}

func (l *Loader) build(ctx context.Context, a *Artifact) (service.Model, error) {
	switch a.Kind {
	case KindLinear:
		m, err := NewLinearModel(a.Labels, a.Bias, a.Weights)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("Built linear model", zap.Strings("labels", m.Labels()), zap.String("version", a.Version))
		return m, nil
	case KindRemote:
		c := client.NewModelServerClient(a.Endpoint, a.Timeout)

		readyCtx, cancel := context.WithTimeout(ctx, l.readyTimeout)
		defer cancel()
		if err := c.Ready(readyCtx); err != nil {
			_ = c.Close()
			return nil, err
		}
		return client.NewRemoteModel(c), nil
	default:
		return nil, fmt.Errorf("unknown artifact kind %q", a.Kind)
	}
}

// ModelName derives a model identifier from an artifact file name
func ModelName(fileName, extension string) string {
	return strings.TrimSuffix(filepath.Base(fileName), extension)
}
