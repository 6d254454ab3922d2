// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

// Package config loads StyleMatch configuration with koanf.
//
// Sources are layered, later layers overriding earlier ones:
//
//  1. Built-in defaults
//  2. An optional YAML file (CONFIG_PATH, config.yaml, /etc/stylematch/config.yaml)
//  3. Environment variables
//
// Only the environment variables listed in envTransformFunc are read; all
// others are ignored.
package config

import "github.com/tomtom215/stylematch/internal/recommend"

// Config is the complete StyleMatch configuration.
type Config struct {
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Logging   LoggingConfig   `koanf:"logging"`
	Metrics   MetricsConfig   `koanf:"metrics"`
}

// CatalogConfig locates the style catalog.
//
// Environment Variables:
//   - CATALOG_PATH: YAML catalog file replacing the built-in catalog
type CatalogConfig struct {
	// Path is a YAML catalog file. Empty uses the built-in catalog.
	Path string `koanf:"path"`
}

// RecommendConfig tunes the scoring and ranking engine.
//
// Environment Variables:
//   - RECOMMEND_WEIGHT_<FACTOR>: explicit weight for one factor, e.g.
//     RECOMMEND_WEIGHT_FACE_SHAPE=0.5
//   - RECOMMEND_DEFAULT_WEIGHT: weight for factors without an explicit weight (default: 0.2)
//   - RECOMMEND_MIN_SCORE: exclusive minimum confidence (default: 0.3)
//   - RECOMMEND_MAX_RESULTS: maximum recommendations returned (default: 8)
//   - RECOMMEND_BASELINE_COMPATIBILITY: reported compatibility score (default: 0.85)
type RecommendConfig struct {
	// Weights maps factor names to explicit weights. Keys from a config file
	// are merged over the defaults.
	Weights map[string]float64 `koanf:"weights"`

	// DefaultWeight applies to factors missing from Weights.
	DefaultWeight float64 `koanf:"default_weight"`

	MinScore              float64 `koanf:"min_score"`
	MaxResults            int     `koanf:"max_results"`
	BaselineCompatibility float64 `koanf:"baseline_compatibility"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json or console (default: json)
//   - LOG_CALLER: include caller file and line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// MetricsConfig controls the Prometheus textfile export.
//
// Environment Variables:
//   - METRICS_TEXTFILE: path written after each run; empty disables export
type MetricsConfig struct {
	TextfilePath string `koanf:"textfile_path"`
}

// RecommendEngineConfig converts the recommend section into an engine config.
func (c *Config) RecommendEngineConfig() *recommend.Config {
	weights := make(map[recommend.Factor]float64, len(c.Recommend.Weights))
	for name, w := range c.Recommend.Weights {
		weights[recommend.Factor(name)] = w
	}
	return &recommend.Config{
		Weights:               recommend.NewWeights(weights, c.Recommend.DefaultWeight),
		MinScore:              c.Recommend.MinScore,
		MaxResults:            c.Recommend.MaxResults,
		BaselineCompatibility: c.Recommend.BaselineCompatibility,
	}
}
