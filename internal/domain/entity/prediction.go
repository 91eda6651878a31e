package entity

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidDistribution marks a probability that is not a finite value in [0, 1]
var ErrInvalidDistribution = errors.New("invalid probability distribution")

// PredictionResult is the output of a single model for one text
type PredictionResult struct {
	TopIntent string             `json:"top_intent" bson:"top_intent"`
	AllProbs  map[string]float64 `json:"all_probs" bson:"all_probs"`
}

// NewPredictionResult creates a PredictionResult, never leaving the distribution nil
func NewPredictionResult(topIntent string, probs map[string]float64) *PredictionResult {
	if probs == nil {
		probs = map[string]float64{}
	}
	return &PredictionResult{
		TopIntent: topIntent,
		AllProbs:  probs,
	}
}

// Validate checks that every probability is finite and within [0, 1]
func (r *PredictionResult) Validate() error {
	for label, p := range r.AllProbs {
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 || p > 1 {
			return fmt.Errorf("%w: %q is %v", ErrInvalidDistribution, label, p)
		}
	}
	return nil
}

// PredictionRecord is the aggregated result of one prediction request
type PredictionRecord struct {
	Text        string                       `json:"text" bson:"text"`
	Owner       string                       `json:"owner" bson:"owner"`
	Predictions map[string]*PredictionResult `json:"predictions" bson:"predictions"`
	Timestamp   int64                        `json:"timestamp" bson:"timestamp"`
}

// NewPredictionRecord creates a PredictionRecord stamped with now in Unix seconds (UTC)
func NewPredictionRecord(text, owner string, predictions map[string]*PredictionResult, now time.Time) *PredictionRecord {
	if predictions == nil {
		predictions = map[string]*PredictionResult{}
	}
	return &PredictionRecord{
		Text:        text,
		Owner:       owner,
		Predictions: predictions,
		Timestamp:   now.UTC().Unix(),
	}
}

// CreatedAt returns the record timestamp as a time.Time
func (r *PredictionRecord) CreatedAt() time.Time {
	return time.Unix(r.Timestamp, 0).UTC()
}
