// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

package recommend

import (
	"slices"
	"strings"

	"github.com/tomtom215/stylematch/internal/validation"
)

const (
	defaultAnalysisDescription = "Versatile style"
	defaultBestFor             = "Most face shapes"
)

var (
	defaultStylingTips = []string{"Consult with your stylist for personalized tips"}
	defaultProducts    = []string{"Quality shampoo and conditioner"}
)

var dailyRoutines = map[string]string{
	"low":    "Wash and air dry naturally",
	"medium": "Occasional use of styling tools",
	"high":   "Daily styling routine with products",
}

// Analyze reports how well a single style suits a face shape and hair type.
// The overall score uses the versatile, adult and unisex defaults.
func (e *Engine) Analyze(req AnalysisRequest) (*Analysis, error) {
	if err := validation.ValidateStruct(&req); err != nil {
		return nil, ErrAnalysisFieldsRequired
	}

	attrs := Attributes{FaceShape: req.FaceShape, HairType: req.HairType}.WithDefaults()
	factors := e.scorer.All(req.StyleName, attrs)

	analysis := &Analysis{
		StyleAnalysis:          e.breakdown(req.StyleName),
		FaceShapeCompatibility: FaceShapeMatch(factors.FaceShape),
		HairTypeRequirements:   e.hairRequirements(req.StyleName, req.HairType),
		DailyMaintenance:       e.dailyMaintenance(req.StyleName, req.HairType),
		ProfessionalOpinion:    ProfessionalOpinion(factors.FaceShape, factors.HairType),
		OverallScore:           e.config.Weights.Aggregate(factors),
	}

	e.logger.Debug().
		Str("style", req.StyleName).
		Str("face_shape", req.FaceShape).
		Str("hair_type", req.HairType).
		Float64("overall_score", analysis.OverallScore).
		Msg("style analyzed")

	return analysis, nil
}

// ProfessionalOpinion grades a style from its face-shape and hair-type scores.
func ProfessionalOpinion(faceScore, hairScore float64) string {
	switch {
	case faceScore >= 0.8 && hairScore >= 0.8:
		return "✅ Professional recommendation: Excellent choice"
	case faceScore >= 0.6 && hairScore >= 0.6:
		return "⚠️ Professional recommendation: Good option with some considerations"
	default:
		return "❌ Professional recommendation: Consider other alternatives"
	}
}

func (e *Engine) breakdown(style string) StyleBreakdown {
	detail, _ := e.catalog.Style(style)

	bestFor := defaultBestFor
	if len(detail.FaceShapes) > 0 {
		bestFor = strings.Join(detail.FaceShapes, ", ") + " face shapes"
	}

	maintenance := detail.Maintenance
	if maintenance == "" {
		maintenance = defaultMaintenance
	}

	tips, ok := e.catalog.StylingTips[style]
	if !ok {
		tips = defaultStylingTips
	}
	products, ok := e.catalog.Products[style]
	if !ok {
		products = defaultProducts
	}

	return StyleBreakdown{
		Description:         e.describe(style, defaultAnalysisDescription),
		BestFor:             bestFor,
		Maintenance:         maintenance,
		StylingTips:         slices.Clone(tips),
		ProductsRecommended: slices.Clone(products),
	}
}

func (e *Engine) hairRequirements(style, hairType string) []string {
	detail, _ := e.catalog.Style(style)

	var reqs []string
	if !slices.Contains(detail.HairTypes, hairType) {
		reqs = append(reqs, "May require adaptation for "+hairType+" hair")
	}
	if detail.Maintenance == "high" {
		reqs = append(reqs, "Needs regular professional maintenance")
	}
	if len(reqs) == 0 {
		return []string{"Low special requirements"}
	}
	return reqs
}

func (e *Engine) dailyMaintenance(style, hairType string) string {
	detail, _ := e.catalog.Style(style)

	routine, ok := dailyRoutines[detail.Maintenance]
	if !ok {
		routine = dailyRoutines[defaultMaintenance]
	}
	if hairType == "curly" || hairType == "coily" {
		return routine + " + definition products"
	}
	return routine
}
