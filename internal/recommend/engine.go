// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

package recommend

import (
	"fmt"
	"slices"
	"sort"

	"github.com/rs/zerolog"

	"github.com/tomtom215/stylematch/internal/catalog"
	"github.com/tomtom215/stylematch/internal/validation"
)

// Engine scores, filters and ranks hairstyles for a set of client attributes.
// It holds no per-request state; the catalog and weights are read-only after
// construction, so an Engine is safe for concurrent use.
type Engine struct {
	config     *Config
	catalog    *catalog.Catalog
	scorer     *Scorer
	candidates []string
	logger     zerolog.Logger
}

// NewEngine creates a new recommendation engine. A nil cfg uses DefaultConfig
// and a nil catalog uses catalog.Default.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, cat *catalog.Catalog, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cat == nil {
		cat = catalog.Default()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	e := &Engine{
		config:     cfg.Clone(),
		catalog:    cat,
		scorer:     NewScorer(cat),
		candidates: Candidates(cat),
		logger:     logger.With().Str("component", "recommend").Logger(),
	}

	e.logger.Debug().
		Int("candidates", len(e.candidates)).
		Int("face_shapes", len(cat.FaceShapes)).
		Int("hair_types", len(cat.HairTypes)).
		Msg("recommendation engine initialized")

	return e, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Catalog returns the catalog the engine reads from.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Candidates returns a copy of the candidate universe in enumeration order.
func (e *Engine) Candidates() []string {
	return slices.Clone(e.candidates)
}

// scored is an intermediate pipeline entry.
type scored struct {
	style   string
	score   float64
	factors FactorScores
}

// Recommend runs the filter and rank pipeline for attrs.
//
// Missing face shape or hair type fails with ErrAttributesRequired before any
// scoring. Unknown but present values never fail; they score with the
// fallback of each factor.
//
//nolint:gocritic // Attributes passed by value to keep callers' copies immutable
func (e *Engine) Recommend(attrs Attributes) (*Result, error) {
	if verr := validation.ValidateStruct(&attrs); verr != nil {
		e.logger.Debug().Strs("fields", verr.Fields()).Msg("recommendation request rejected")
		return nil, ErrAttributesRequired
	}
	attrs = attrs.WithDefaults()

	result := &Result{
		Recommendations: make([]Recommendation, 0, e.config.MaxResults),
		TotalCandidates: len(e.candidates),
	}

	ranked := make([]scored, 0, len(e.candidates))
	for _, style := range e.candidates {
		if attrs.HairLength != "" && !e.supportsLength(style, attrs.HairLength) {
			result.FilteredByLength++
			continue
		}

		factors := e.scorer.All(style, attrs)
		score := e.config.Weights.Aggregate(factors)
		if score <= e.config.MinScore {
			result.BelowThreshold++
			continue
		}
		ranked = append(ranked, scored{style: style, score: score, factors: factors})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	if len(ranked) > e.config.MaxResults {
		ranked = ranked[:e.config.MaxResults]
	}

	for _, s := range ranked {
		result.Recommendations = append(result.Recommendations, e.annotate(s.style, s.score, s.factors, attrs))
	}

	e.logger.Debug().
		Str("face_shape", attrs.FaceShape).
		Str("hair_type", attrs.HairType).
		Str("personal_style", attrs.PersonalStyle).
		Int("candidates", result.TotalCandidates).
		Int("filtered_by_length", result.FilteredByLength).
		Int("below_threshold", result.BelowThreshold).
		Int("returned", len(result.Recommendations)).
		Msg("recommendations ranked")

	return result, nil
}

// supportsLength applies the hair length hard filter. Styles without catalog
// metadata, or without declared lengths, pass.
func (e *Engine) supportsLength(style, length string) bool {
	d, ok := e.catalog.Style(style)
	if !ok {
		return true
	}
	return d.SupportsLength(length)
}

// Score returns the aggregate confidence score of a single style. Empty
// optional attributes take their defaults.
//
//nolint:gocritic // Attributes passed by value to keep callers' copies immutable
func (e *Engine) Score(style string, attrs Attributes) float64 {
	return e.config.Weights.Aggregate(e.scorer.All(style, attrs.WithDefaults()))
}

// Factors returns the per-factor scores of a single style.
//
//nolint:gocritic // Attributes passed by value to keep callers' copies immutable
func (e *Engine) Factors(style string, attrs Attributes) FactorScores {
	return e.scorer.All(style, attrs.WithDefaults())
}

// CompatibilityScore returns the overall compatibility reported with every
// recommendation list.
func (e *Engine) CompatibilityScore() float64 {
	return e.config.BaselineCompatibility
}

// SeasonalTrends returns a copy of the catalog trend summary.
func (e *Engine) SeasonalTrends() SeasonalTrends {
	t := e.catalog.Trends
	return SeasonalTrends{
		Current:  slices.Clone(t.Current),
		Emerging: slices.Clone(t.Emerging),
		Classic:  slices.Clone(t.Classic),
	}
}

// Overview returns the templated analysis for a client.
func (e *Engine) Overview(faceShape, hairType, personal string) Overview {
	if personal == "" {
		personal = DefaultPersonalStyle
	}
	return Overview{
		Strengths:       fmt.Sprintf("Your %s face shape and %s hair create great styling opportunities", faceShape, hairType),
		Considerations:  "Consider face-framing layers to enhance your features",
		TrendAlignment:  fmt.Sprintf("Your %s style aligns with current 'effortless chic' trends", personal),
		ProfessionalTip: "Regular trims will maintain your style's shape and health",
	}
}

// ProfessionalAdvice combines the face-shape and hair-type advice.
func (e *Engine) ProfessionalAdvice(faceShape, hairType string) string {
	face, ok := e.catalog.FaceShapeAdvice[faceShape]
	if !ok {
		face = "Consult with a professional stylist"
	}
	hair, ok := e.catalog.HairTypeAdvice[hairType]
	if !ok {
		hair = "Care for your hair type with specific products"
	}
	return face + ". " + hair
}

// BestMatches returns the styles that are both excellent for the face shape
// and perfect for the hair type, optionally narrowed to a known style profile
// and to styles that declare the given hair length. The result is sorted.
func (e *Engine) BestMatches(faceShape, hairType, profile, length string) []string {
	hair := e.catalog.HairTypes.Tiers(hairType)
	p, hasProfile := e.catalog.Profile(profile)

	var out []string
	for _, style := range e.catalog.FaceShapes.Tiers(faceShape)[catalog.TierExcellent] {
		if !hair.Contains(catalog.TierPerfect, style) {
			continue
		}
		if hasProfile && !p.Recommends(style) {
			continue
		}
		if length != "" {
			d, ok := e.catalog.Style(style)
			if !ok || !slices.Contains(d.HairLengths, length) {
				continue
			}
		}
		if !slices.Contains(out, style) {
			out = append(out, style)
		}
	}
	sort.Strings(out)
	return out
}
