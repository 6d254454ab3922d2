// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/stylematch/internal/agent"
	"github.com/tomtom215/stylematch/internal/catalog"
	"github.com/tomtom215/stylematch/internal/config"
	"github.com/tomtom215/stylematch/internal/recommend"
)

// initAgent loads the catalog, builds the engine and wraps it in an agent.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initAgent(cfg *config.Config, logger zerolog.Logger) (*agent.Agent, error) {
	cat, err := loadCatalog(cfg, logger)
	if err != nil {
		return nil, err
	}

	engineCfg := cfg.RecommendEngineConfig()
	logger.Debug().
		Float64("min_score", engineCfg.MinScore).
		Int("max_results", engineCfg.MaxResults).
		Float64("default_weight", engineCfg.Weights.Fallback()).
		Msg("initializing recommendation engine")

	engine, err := recommend.NewEngine(engineCfg, cat, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create recommendation engine: %w", err)
	}

	return agent.New(engine, logger), nil
}

// loadCatalog returns the configured catalog file, or the built-in catalog
// when no path is set.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func loadCatalog(cfg *config.Config, logger zerolog.Logger) (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Default(), nil
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Info().
		Str("path", cfg.Catalog.Path).
		Int("styles", len(cat.Styles)).
		Msg("Catalog loaded")
	return cat, nil
}
