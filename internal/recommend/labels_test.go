// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

package recommend

import "testing"

func TestDisplayName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"curtain_bangs":    "Curtain Bangs",
		"pixie":            "Pixie",
		"side_swept_bangs": "Side Swept Bangs",
		"":                 "",
	}
	for in, want := range tests {
		if got := DisplayName(in); got != want {
			t.Errorf("DisplayName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestScoreLabels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score              float64
		face, hair, rating string
	}{
		{1.0, "Excellent compatibility", "Perfect for your hair type", "⭐️⭐️⭐️⭐️⭐️ (Excellent)"},
		{0.8, "Excellent compatibility", "Perfect for your hair type", "⭐️⭐️⭐️⭐️ (Very Good)"},
		{0.6, "Good compatibility", "Good for your hair type", "⭐️⭐️⭐️ (Good)"},
		{0.5, "Moderate compatibility", "Requires additional styling", "⭐️⭐️⭐️ (Good)"},
		{0.4, "Moderate compatibility", "Requires additional styling", "⭐️⭐️ (Fair)"},
		{0.3, "Not recommended for this face shape", "Not compatible with your hair type", "⭐️⭐️ (Fair)"},
		{0.2, "Not recommended for this face shape", "Not compatible with your hair type", "⭐️⭐️ (Fair)"},
	}

	for _, tt := range tests {
		if got := FaceShapeMatch(tt.score); got != tt.face {
			t.Errorf("FaceShapeMatch(%v) = %q, want %q", tt.score, got, tt.face)
		}
		if got := HairTypeCompatibility(tt.score); got != tt.hair {
			t.Errorf("HairTypeCompatibility(%v) = %q, want %q", tt.score, got, tt.hair)
		}
		if got := ProfessionalRating(tt.score); got != tt.rating {
			t.Errorf("ProfessionalRating(%v) = %q, want %q", tt.score, got, tt.rating)
		}
	}
}

func TestMaintenanceDescription(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"low":     "Low maintenance - easy to maintain style",
		"medium":  "Moderate maintenance - requires some care",
		"high":    "High maintenance - needs regular attention",
		"":        "Moderate maintenance - requires some care",
		"extreme": "Moderate maintenance",
	}
	for level, want := range tests {
		if got := MaintenanceDescription(level); got != want {
			t.Errorf("MaintenanceDescription(%q) = %q, want %q", level, got, want)
		}
	}
}

func TestStylingTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base, hair, want string
	}{
		{"15-20 minutes", "straight", "15-20 minutes"},
		{"15-20 minutes", "curly", "15-20 minutes + extra time for definition"},
		{"5-10 minutes", "coily", "5-10 minutes + extra time for definition"},
		{"5-10 minutes", "fine", "5-10 minutes + volume products"},
		{"", "wavy", "10-15 minutes"},
	}
	for _, tt := range tests {
		if got := StylingTime(tt.base, tt.hair); got != tt.want {
			t.Errorf("StylingTime(%q, %q) = %q, want %q", tt.base, tt.hair, got, tt.want)
		}
	}
}

func TestEngine_AnnotateDefaults(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, nil)
	attrs := Attributes{FaceShape: "oval", HairType: "fine"}.WithDefaults()
	rec := engine.annotate("wispy_bangs", 0.9, engine.scorer.All("wispy_bangs", attrs), attrs)

	if rec.Description != DefaultStyleDescription {
		t.Errorf("Description = %q, want %q", rec.Description, DefaultStyleDescription)
	}
	if rec.MaintenanceLevel != "Moderate maintenance - requires some care" {
		t.Errorf("MaintenanceLevel = %q", rec.MaintenanceLevel)
	}
	if rec.StylingTime != "10-15 minutes + volume products" {
		t.Errorf("StylingTime = %q", rec.StylingTime)
	}
	if rec.ProfessionalRating != "⭐️⭐️⭐️⭐️ (Very Good)" {
		t.Errorf("ProfessionalRating = %q", rec.ProfessionalRating)
	}
}
