// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

package recommend

import (
	"fmt"
	"math"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Weights defines the contribution of each factor to the confidence score.
	// Weights are not normalized; the aggregate is capped at 1.0 instead.
	Weights Weights

	// MinScore is the exclusive lower bound a style's confidence must exceed
	// to be recommended.
	// Default: 0.3.
	MinScore float64

	// MaxResults bounds the recommendation list.
	// Default: 8.
	MaxResults int

	// BaselineCompatibility is reported as the overall compatibility score.
	// Default: 0.85.
	BaselineCompatibility float64
}

// DefaultConfig returns a Config with the production defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights:               DefaultWeights(),
		MinScore:              0.3,
		MaxResults:            8,
		BaselineCompatibility: 0.85,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if c.MinScore < 0 || c.MinScore > 1 || math.IsNaN(c.MinScore) {
		return fmt.Errorf("min_score must be in [0, 1], got %f", c.MinScore)
	}
	if c.MaxResults < 1 {
		return fmt.Errorf("max_results must be positive, got %d", c.MaxResults)
	}
	if c.BaselineCompatibility < 0 || c.BaselineCompatibility > 1 || math.IsNaN(c.BaselineCompatibility) {
		return fmt.Errorf("baseline_compatibility must be in [0, 1], got %f", c.BaselineCompatibility)
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	return &Config{
		Weights:               NewWeights(c.Weights.Explicit(), c.Weights.Fallback()),
		MinScore:              c.MinScore,
		MaxResults:            c.MaxResults,
		BaselineCompatibility: c.BaselineCompatibility,
	}
}
