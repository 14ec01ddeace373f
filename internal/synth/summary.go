package synth

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// SeriesSummary holds basic descriptive statistics for one signal.
type SeriesSummary struct {
	Mean float64
	Min  float64
	Max  float64
}

// Summarize computes mean, min, and max for a series
func Summarize(values []float64) (SeriesSummary, error) {
	mean, err := stats.Mean(values)
	if err != nil {
		return SeriesSummary{}, fmt.Errorf("failed to compute mean: %w", err)
	}
	min, err := stats.Min(values)
	if err != nil {
		return SeriesSummary{}, fmt.Errorf("failed to compute min: %w", err)
	}
	max, err := stats.Max(values)
	if err != nil {
		return SeriesSummary{}, fmt.Errorf("failed to compute max: %w", err)
	}

	return SeriesSummary{Mean: mean, Min: min, Max: max}, nil
}
