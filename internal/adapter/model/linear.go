package model

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/ressKim-io/intent-service/internal/domain/entity"
	"github.com/ressKim-io/intent-service/internal/domain/service"
)

// LinearModel is a bag-of-words classifier: per-label bias plus per-token weights, softmaxed
type LinearModel struct {
	labels  []string
	bias    []float64
	weights map[string][]float64
}

var _ service.Model = (*LinearModel)(nil)

// NewLinearModel builds a LinearModel and validates that every referenced label is declared
func NewLinearModel(labels []string, bias map[string]float64, weights map[string]map[string]float64) (*LinearModel, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("no labels")
	}

	index := make(map[string]int, len(labels))
	for i, label := range labels {
		if label == "" {
			return nil, fmt.Errorf("label %d is empty", i)
		}
		if _, dup := index[label]; dup {
			return nil, fmt.Errorf("duplicate label %q", label)
		}
		index[label] = i
	}

	m := &LinearModel{
		labels:  append([]string(nil), labels...),
		bias:    make([]float64, len(labels)),
		weights: make(map[string][]float64),
	}

	for label, b := range bias {
		i, ok := index[label]
		if !ok {
			return nil, fmt.Errorf("bias for undeclared label %q", label)
		}
		if !isFinite(b) {
			return nil, fmt.Errorf("bias for label %q is not finite", label)
		}
		m.bias[i] = b
	}

	for label, tokens := range weights {
		i, ok := index[label]
		if !ok {
			return nil, fmt.Errorf("weights for undeclared label %q", label)
		}
		for token, w := range tokens {
			if !isFinite(w) {
				return nil, fmt.Errorf("weight of %q for label %q is not finite", token, label)
			}
			token = strings.ToLower(token)
			row, ok := m.weights[token]
			if !ok {
				row = make([]float64, len(labels))
				m.weights[token] = row
			}
			row[i] += w
		}
	}

	return m, nil
}

// Labels returns the labels in declaration order
func (m *LinearModel) Labels() []string {
	return append([]string(nil), m.labels...)
}

// Predict scores text against every label
func (m *LinearModel) Predict(ctx context.Context, text string) (*entity.PredictionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scores := append([]float64(nil), m.bias...)
	for _, token := range Tokenize(text) {
		if row, ok := m.weights[token]; ok {
			for i, w := range row {
				scores[i] += w
			}
		}
	}

	for i, score := range scores {
		if !isFinite(score) {
			return nil, fmt.Errorf("score for label %q overflowed", m.labels[i])
		}
	}

	probs := softmax(scores)

	top := 0
	dist := make(map[string]float64, len(m.labels))
	for i, label := range m.labels {
		if !isFinite(probs[i]) {
			return nil, fmt.Errorf("probability for label %q is not finite", label)
		}
		dist[label] = probs[i]
		if probs[i] > probs[top] {
			top = i
		}
	}

	return entity.NewPredictionResult(m.labels[top], dist), nil
}

// Tokenize lowercases text and splits it on anything that is not a letter or digit
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func softmax(scores []float64) []float64 {
	peak := math.Inf(-1)
	for _, s := range scores {
		if s > peak {
			peak = s
		}
	}

	out := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		out[i] = math.Exp(s - peak)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
