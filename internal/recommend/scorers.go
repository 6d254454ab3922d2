// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

package recommend

import "github.com/tomtom215/stylematch/internal/catalog"

// Flat and fallback scores for the profile, age and gender factors.
const (
	versatileScore     = 0.7
	profileMatchScore  = 1.0
	anyProfileScore    = 0.6
	noProfileScore     = 0.4
	ageAllowedScore    = 1.0
	ageDefaultScore    = 0.7
	unisexScore        = 0.8
	genderAllowedScore = 1.0
	genderDefaultScore = 0.6
)

// Scorer computes per-factor scores against a catalog. Every method is total:
// unknown styles, categories, profiles or groups return the documented
// fallback instead of failing.
type Scorer struct {
	cat *catalog.Catalog
}

// NewScorer creates a scorer reading from cat.
func NewScorer(cat *catalog.Catalog) *Scorer {
	return &Scorer{cat: cat}
}

// FaceShape scores style against the face-shape rule table.
func (s *Scorer) FaceShape(style, faceShape string) float64 {
	return FaceShapeLadder.Score(s.cat.FaceShapes.Tiers(faceShape), style)
}

// HairType scores style against the hair-type rule table.
func (s *Scorer) HairType(style, hairType string) float64 {
	return HairTypeLadder.Score(s.cat.HairTypes.Tiers(hairType), style)
}

// PersonalStyle scores style against the style profiles. "versatile" scores a
// flat 0.7; otherwise membership of the named profile wins over membership of
// any profile.
func (s *Scorer) PersonalStyle(style, personal string) float64 {
	if personal == DefaultPersonalStyle {
		return versatileScore
	}
	if p, ok := s.cat.Profile(personal); ok && p.Recommends(style) {
		return profileMatchScore
	}
	if s.cat.InAnyProfile(style) {
		return anyProfileScore
	}
	return noProfileScore
}

// AgeSuitability scores style against the age group's allow-list.
func (s *Scorer) AgeSuitability(style, ageGroup string) float64 {
	if s.cat.AgeGroupAllows(ageGroup, style) {
		return ageAllowedScore
	}
	return ageDefaultScore
}

// GenderSuitability scores style against the gender's allow-list.
func (s *Scorer) GenderSuitability(style, gender string) float64 {
	if gender == DefaultGender {
		return unisexScore
	}
	if s.cat.GenderAllows(gender, style) {
		return genderAllowedScore
	}
	return genderDefaultScore
}

// All computes every factor score for style. attrs must already have its
// defaults applied.
//
//nolint:gocritic // Attributes passed by value to keep callers' copies immutable
func (s *Scorer) All(style string, attrs Attributes) FactorScores {
	return FactorScores{
		FaceShape:         s.FaceShape(style, attrs.FaceShape),
		HairType:          s.HairType(style, attrs.HairType),
		PersonalStyle:     s.PersonalStyle(style, attrs.PersonalStyle),
		AgeSuitability:    s.AgeSuitability(style, attrs.AgeGroup),
		GenderSuitability: s.GenderSuitability(style, attrs.Gender),
	}
}
