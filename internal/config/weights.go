package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScoringWeights are the relative weights of each suggestion factor. They do
// not need to sum to 100; scores are normalized by the total.
type ScoringWeights struct {
	Proximity    float64 `yaml:"proximity"`
	Availability float64 `yaml:"availability"`
	OnTime       float64 `yaml:"on_time"`
	Rating       float64 `yaml:"rating"`
	Preferred    float64 `yaml:"preferred"`
}

func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{Proximity: 35, Availability: 20, OnTime: 20, Rating: 15, Preferred: 10}
}

func (w ScoringWeights) Total() float64 {
	return w.Proximity + w.Availability + w.OnTime + w.Rating + w.Preferred
}

func (w ScoringWeights) Validate() error {
	for name, v := range map[string]float64{
		"proximity":    w.Proximity,
		"availability": w.Availability,
		"on_time":      w.OnTime,
		"rating":       w.Rating,
		"preferred":    w.Preferred,
	} {
		if v < 0 {
			return fmt.Errorf("scoring weight %s must not be negative", name)
		}
	}
	if w.Total() <= 0 {
		return fmt.Errorf("scoring weights must not all be zero")
	}
	return nil
}

// LoadScoringWeights reads a YAML weights file. An empty path returns the
// defaults; keys missing from the file keep their default value.
func LoadScoringWeights(path string) (ScoringWeights, error) {
	w := DefaultScoringWeights()
	if path == "" {
		return w, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ScoringWeights{}, fmt.Errorf("read scoring weights: %w", err)
	}
	return ParseScoringWeights(data)
}

func ParseScoringWeights(data []byte) (ScoringWeights, error) {
	w := DefaultScoringWeights()
	if err := yaml.Unmarshal(data, &w); err != nil {
		return ScoringWeights{}, fmt.Errorf("parse scoring weights: %w", err)
	}
	if err := w.Validate(); err != nil {
		return ScoringWeights{}, err
	}
	return w, nil
}
