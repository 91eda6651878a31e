package model

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Artifact kinds understood by the loader
const (
	KindLinear = "linear"
	KindRemote = "remote"
)

const defaultRemoteTimeout = 5 * time.Second

// Artifact is the on-disk description of a classifier
type Artifact struct {
	Kind    string `yaml:"kind"`
	Version string `yaml:"version,omitempty"`

	// linear
	Labels  []string                      `yaml:"labels,omitempty"`
	Bias    map[string]float64            `yaml:"bias,omitempty"`
	Weights map[string]map[string]float64 `yaml:"weights,omitempty"`

	// remote
	Endpoint string        `yaml:"endpoint,omitempty"`
	Timeout  time.Duration `yaml:"timeout,omitempty"`
}

// DecodeArtifact reads one YAML (or JSON) artifact, rejecting unknown fields
func DecodeArtifact(r io.Reader) (*Artifact, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var a Artifact
	if err := dec.Decode(&a); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("artifact is empty")
		}
		return nil, fmt.Errorf("failed to decode artifact: %w", err)
	}

	switch a.Kind {
	case KindLinear:
		if len(a.Labels) == 0 {
			return nil, errors.New("linear artifact has no labels")
		}
	case KindRemote:
		if a.Endpoint == "" {
			return nil, errors.New("remote artifact has no endpoint")
		}
		if a.Timeout <= 0 {
			a.Timeout = defaultRemoteTimeout
		}
	case "":
		return nil, errors.New("artifact kind is missing")
	default:
		return nil, fmt.Errorf("unknown artifact kind %q", a.Kind)
	}

	return &a, nil
}
