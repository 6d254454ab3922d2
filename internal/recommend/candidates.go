// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

package recommend

import "github.com/tomtom215/stylematch/internal/catalog"

// candidateTiers are the face-shape tiers that feed the candidate universe.
// The avoid tier is deliberately absent.
var candidateTiers = []string{catalog.TierExcellent, catalog.TierGood, catalog.TierFair}

// Candidates returns every style listed in an excellent, good or fair tier of
// any face shape. Face shapes are visited in ascending key order, tiers in
// priority order and styles in declared order; the first occurrence of a style
// fixes its position.
func Candidates(cat *catalog.Catalog) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, shape := range cat.FaceShapes.Keys() {
		tiers := cat.FaceShapes.Tiers(shape)
		for _, tier := range candidateTiers {
			for _, style := range tiers[tier] {
				if _, ok := seen[style]; ok {
					continue
				}
				seen[style] = struct{}{}
				out = append(out, style)
			}
		}
	}
	return out
}
