// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

package recommend

import (
	"fmt"
	"math"
	"sort"
)

// DefaultFallbackWeight applies to any factor without an explicit weight.
const DefaultFallbackWeight = 0.2

// Weights maps factors to their contribution in the aggregate score.
// A Weights value is immutable: the explicit table is copied on construction
// and never exposed directly.
type Weights struct {
	explicit map[Factor]float64
	fallback float64
}

// NewWeights builds a weight table from explicit per-factor weights and the
// weight used for factors that are not listed.
func NewWeights(explicit map[Factor]float64, fallback float64) Weights {
	table := make(map[Factor]float64, len(explicit))
	for f, w := range explicit {
		table[f] = w
	}
	return Weights{explicit: table, fallback: fallback}
}

// DefaultWeights returns the production weight table.
//
// Only face_shape, hair_type, personal_style and trend_factor carry explicit
// weights. age_suitability and gender_suitability fall back to 0.2 and no
// scorer produces trend_factor, so the effective weights sum to 1.3 and the
// aggregate relies on the clamp in Aggregate.
func DefaultWeights() Weights {
	return NewWeights(map[Factor]float64{
		FactorFaceShape:     0.4,
		FactorHairType:      0.3,
		FactorPersonalStyle: 0.2,
		FactorTrend:         0.1,
	}, DefaultFallbackWeight)
}

// Of returns the weight for a factor: the explicit weight when one is set,
// otherwise the fallback weight.
func (w Weights) Of(f Factor) float64 {
	if weight, ok := w.explicit[f]; ok {
		return weight
	}
	return w.fallback
}

// Fallback returns the weight applied to factors without an explicit entry.
func (w Weights) Fallback() float64 {
	return w.fallback
}

// Explicit returns a copy of the explicit weight table.
func (w Weights) Explicit() map[Factor]float64 {
	out := make(map[Factor]float64, len(w.explicit))
	for f, weight := range w.explicit {
		out[f] = weight
	}
	return out
}

// Aggregate combines factor scores into a confidence score in [0, 1].
// The sum is capped at 1.0; with non-negative weights it cannot fall below 0.
func (w Weights) Aggregate(s FactorScores) float64 {
	total := 0.0
	s.Each(func(f Factor, score float64) {
		// The conversion forces rounding of the product, keeping results
		// identical on platforms that would otherwise fuse multiply-add.
		total += float64(w.Of(f) * score)
	})
	return math.Min(1.0, total)
}

// Validate rejects negative or non-finite weights.
func (w Weights) Validate() error {
	if w.fallback < 0 || math.IsNaN(w.fallback) || math.IsInf(w.fallback, 0) {
		return fmt.Errorf("weights.fallback must be a non-negative number, got %f", w.fallback)
	}

	factors := make([]string, 0, len(w.explicit))
	for f := range w.explicit {
		factors = append(factors, string(f))
	}
	sort.Strings(factors)

	for _, f := range factors {
		weight := w.explicit[Factor(f)]
		if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
			return fmt.Errorf("weights.%s must be a non-negative number, got %f", f, weight)
		}
	}
	return nil
}
