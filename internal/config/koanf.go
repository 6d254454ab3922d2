// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/stylematch/config.yaml",
	"/etc/stylematch/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultWeights are the explicit factor weights. They are merged into the
// loaded configuration after unmarshaling rather than loaded as a struct
// default, because koanf treats a typed map as a single value and would let any
// file or environment weight replace the whole table.
func defaultWeights() map[string]float64 {
	return map[string]float64{
		"face_shape":     0.4,
		"hair_type":      0.3,
		"personal_style": 0.2,
		"trend_factor":   0.1,
	}
}

// defaultConfig returns a Config with the production defaults.
func defaultConfig() *Config {
	return &Config{
		Recommend: RecommendConfig{
			DefaultWeight:         0.2,
			MinScore:              0.3,
			MaxResults:            8,
			BaselineCompatibility: 0.85,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load loads configuration from defaults, a YAML file and the environment.
//
// path names the config file explicitly and must exist. When path is empty
// the file is located through CONFIG_PATH or DefaultConfigPaths, and a missing
// file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file
	if path == "" {
		path = findConfigFile()
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// Layer 3: environment variables
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.applyWeightDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// applyWeightDefaults fills in default weights for factors the sources left unset.
func (c *Config) applyWeightDefaults() {
	if c.Recommend.Weights == nil {
		c.Recommend.Weights = make(map[string]float64)
	}
	for name, w := range defaultWeights() {
		if _, ok := c.Recommend.Weights[name]; !ok {
			c.Recommend.Weights[name] = w
		}
	}
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// weightEnvPrefix maps RECOMMEND_WEIGHT_<FACTOR> onto recommend.weights.<factor>.
const weightEnvPrefix = "recommend_weight_"

// envTransformFunc maps environment variable names to koanf config paths.
// Unmapped variables return "" and are skipped.
//
// Examples:
//   - LOG_LEVEL -> logging.level
//   - CATALOG_PATH -> catalog.path
//   - RECOMMEND_WEIGHT_HAIR_TYPE -> recommend.weights.hair_type
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		"catalog_path": "catalog.path",

		"recommend_default_weight":         "recommend.default_weight",
		"recommend_min_score":              "recommend.min_score",
		"recommend_max_results":            "recommend.max_results",
		"recommend_baseline_compatibility": "recommend.baseline_compatibility",

		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",

		"metrics_textfile": "metrics.textfile_path",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}

	if factor, ok := strings.CutPrefix(key, weightEnvPrefix); ok && factor != "" {
		return "recommend.weights." + factor
	}

	return ""
}
