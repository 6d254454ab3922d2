// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

package recommend

import "github.com/tomtom215/stylematch/internal/catalog"

// TierScore pairs a tier name with the score awarded for membership.
type TierScore struct {
	Tier  string
	Score float64
}

// TierLadder scores a style by the first tier, in priority order, that lists it.
type TierLadder struct {
	steps    []TierScore
	fallback float64
}

// NewTierLadder builds a ladder checked in the given order. fallback is the
// score for styles no tier lists.
func NewTierLadder(fallback float64, steps ...TierScore) TierLadder {
	return TierLadder{steps: append([]TierScore(nil), steps...), fallback: fallback}
}

// Score returns the score of the first tier listing style, or the fallback
// when none does (including when tiers is nil).
func (l TierLadder) Score(tiers catalog.TierTable, style string) float64 {
	for _, step := range l.steps {
		if tiers.Contains(step.Tier, style) {
			return step.Score
		}
	}
	return l.fallback
}

// Fallback returns the score for unlisted styles.
func (l TierLadder) Fallback() float64 {
	return l.fallback
}

var (
	// FaceShapeLadder scores the face-shape rule table.
	FaceShapeLadder = NewTierLadder(0.4,
		TierScore{Tier: catalog.TierExcellent, Score: 1.0},
		TierScore{Tier: catalog.TierGood, Score: 0.8},
		TierScore{Tier: catalog.TierFair, Score: 0.6},
		TierScore{Tier: catalog.TierAvoid, Score: 0.2},
	)

	// HairTypeLadder scores the hair-type rule table.
	HairTypeLadder = NewTierLadder(0.3,
		TierScore{Tier: catalog.TierPerfect, Score: 1.0},
		TierScore{Tier: catalog.TierGood, Score: 0.8},
		TierScore{Tier: catalog.TierRequiresStyling, Score: 0.5},
	)
)
