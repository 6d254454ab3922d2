// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

package config

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/tomtom215/stylematch/internal/recommend"
)

var (
	validLogLevels  = []string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled"}
	validLogFormats = []string{"json", "console"}
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRecommend(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateRecommend() error {
	r := c.Recommend

	names := make([]string, 0, len(r.Weights))
	for name := range r.Weights {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !recommend.KnownFactor(name) {
			return fmt.Errorf("recommend.weights: unknown factor %q", name)
		}
		if r.Weights[name] < 0 {
			return fmt.Errorf("recommend.weights.%s must be non-negative, got %f", name, r.Weights[name])
		}
	}
	if r.DefaultWeight < 0 {
		return fmt.Errorf("RECOMMEND_DEFAULT_WEIGHT must be non-negative, got %f", r.DefaultWeight)
	}
	if r.MinScore < 0 || r.MinScore > 1 {
		return fmt.Errorf("RECOMMEND_MIN_SCORE must be in [0, 1], got %f", r.MinScore)
	}
	if r.MaxResults < 1 {
		return fmt.Errorf("RECOMMEND_MAX_RESULTS must be positive, got %d", r.MaxResults)
	}
	if r.BaselineCompatibility < 0 || r.BaselineCompatibility > 1 {
		return fmt.Errorf("RECOMMEND_BASELINE_COMPATIBILITY must be in [0, 1], got %f", r.BaselineCompatibility)
	}
	return nil
}

func (c *Config) validateLogging() error {
	level := strings.ToLower(c.Logging.Level)
	if !slices.Contains(validLogLevels, level) {
		return fmt.Errorf("LOG_LEVEL must be one of %s, got %q", strings.Join(validLogLevels, ", "), c.Logging.Level)
	}
	format := strings.ToLower(c.Logging.Format)
	if !slices.Contains(validLogFormats, format) {
		return fmt.Errorf("LOG_FORMAT must be one of %s, got %q", strings.Join(validLogFormats, ", "), c.Logging.Format)
	}
	return nil
}
