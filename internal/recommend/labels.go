// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

package recommend

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fallback text used when the catalog has nothing for a style.
const (
	DefaultStyleDescription = "Modern and versatile style"
	DefaultStylingTime      = "10-15 minutes"
	defaultMaintenance      = "medium"
	unknownMaintenance      = "Moderate maintenance"
)

var maintenanceDescriptions = map[string]string{
	"low":    "Low maintenance - easy to maintain style",
	"medium": "Moderate maintenance - requires some care",
	"high":   "High maintenance - needs regular attention",
}

// DisplayName turns a style identifier into a human-readable title:
// "curtain_bangs" becomes "Curtain Bangs".
func DisplayName(style string) string {
	// A Caser keeps state and is not safe for concurrent use.
	return cases.Title(language.English).String(strings.ReplaceAll(style, "_", " "))
}

// FaceShapeMatch describes a face-shape factor score.
func FaceShapeMatch(score float64) string {
	switch {
	case score >= 0.8:
		return "Excellent compatibility"
	case score >= 0.6:
		return "Good compatibility"
	case score >= 0.4:
		return "Moderate compatibility"
	default:
		return "Not recommended for this face shape"
	}
}

// HairTypeCompatibility describes a hair-type factor score.
func HairTypeCompatibility(score float64) string {
	switch {
	case score >= 0.8:
		return "Perfect for your hair type"
	case score >= 0.6:
		return "Good for your hair type"
	case score >= 0.4:
		return "Requires additional styling"
	default:
		return "Not compatible with your hair type"
	}
}

// ProfessionalRating renders a face-shape factor score as a star rating.
func ProfessionalRating(score float64) string {
	switch {
	case score >= 0.9:
		return "⭐️⭐️⭐️⭐️⭐️ (Excellent)"
	case score >= 0.7:
		return "⭐️⭐️⭐️⭐️ (Very Good)"
	case score >= 0.5:
		return "⭐️⭐️⭐️ (Good)"
	default:
		return "⭐️⭐️ (Fair)"
	}
}

// MaintenanceDescription describes a maintenance level. An empty level is
// treated as medium; an unrecognised level gets a generic description.
func MaintenanceDescription(level string) string {
	if level == "" {
		level = defaultMaintenance
	}
	if desc, ok := maintenanceDescriptions[level]; ok {
		return desc
	}
	return unknownMaintenance
}

// StylingTime adjusts a base styling time for the client's hair type.
func StylingTime(base, hairType string) string {
	if base == "" {
		base = DefaultStylingTime
	}
	switch hairType {
	case "curly", "coily":
		return base + " + extra time for definition"
	case "fine":
		return base + " + volume products"
	default:
		return base
	}
}

// styleAlignment describes how a style fits the requested personal style.
func (e *Engine) styleAlignment(style, personal string) string {
	if personal == DefaultPersonalStyle {
		return "Versatile style"
	}
	if p, ok := e.catalog.Profile(personal); ok && p.Recommends(style) {
		return "Perfect for " + personal + " style"
	}
	return "Adaptable style"
}

// describe returns the catalog description of a style or the given fallback.
func (e *Engine) describe(style, fallback string) string {
	if d, ok := e.catalog.Style(style); ok && d.Description != "" {
		return d.Description
	}
	return fallback
}

// annotate builds the labelled recommendation for a scored style.
//
//nolint:gocritic // Attributes passed by value to keep callers' copies immutable
func (e *Engine) annotate(style string, score float64, factors FactorScores, attrs Attributes) Recommendation {
	detail, _ := e.catalog.Style(style)
	return Recommendation{
		StyleName:             style,
		DisplayName:           DisplayName(style),
		ConfidenceScore:       score,
		FaceShapeMatch:        FaceShapeMatch(factors.FaceShape),
		HairTypeCompatibility: HairTypeCompatibility(factors.HairType),
		StyleAlignment:        e.styleAlignment(style, attrs.PersonalStyle),
		MaintenanceLevel:      MaintenanceDescription(detail.Maintenance),
		StylingTime:           StylingTime(detail.StylingTime, attrs.HairType),
		ProfessionalRating:    ProfessionalRating(factors.FaceShape),
		Description:           e.describe(style, DefaultStyleDescription),
		Factors:               factors,
	}
}
