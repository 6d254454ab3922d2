// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

// Package recommend implements the rule-based hairstyle scoring and ranking engine.
//
// # Pipeline
//
// A recommendation request flows through four stages:
//
//   - Candidate enumeration: every style in an excellent, good or fair tier of
//     any face shape, in a fixed deterministic order
//   - Factor scoring: five independent scorers map a style and one client
//     attribute to a value in [0, 1]
//   - Aggregation: a weighted sum of the factor scores, capped at 1.0
//   - Filter and rank: hair length hard filter, strict minimum score, stable
//     descending sort and truncation
//
// # Factor Scores
//
// Face shape and hair type use tier ladders (see TierLadder). The first tier
// listing the style wins; unlisted styles get the ladder fallback:
//
//	face shape: excellent 1.0, good 0.8, fair 0.6, avoid 0.2, unlisted 0.4
//	hair type:  perfect 1.0, good 0.8, requires_styling 0.5, unlisted 0.3
//
// Personal style scores 0.7 for "versatile", otherwise 1.0 when the named
// profile recommends the style, 0.6 when any profile does and 0.4 otherwise.
// Age and gender suitability are allow-list lookups (1.0/0.7 and 1.0/0.6),
// with a flat 0.8 for "unisex".
//
// # Weights
//
// The default weights are face_shape 0.4, hair_type 0.3, personal_style 0.2 and
// trend_factor 0.1. Factors without an explicit weight use 0.2, so age and
// gender suitability each contribute at 0.2 while trend_factor is never
// scored. The effective weights sum past 1.0 and the aggregate is capped.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), catalog.Default(), logger)
//	if err != nil {
//	    return err
//	}
//
//	result, err := engine.Recommend(recommend.Attributes{
//	    FaceShape: "oval",
//	    HairType:  "wavy",
//	})
//
// # Thread Safety
//
// The engine holds no mutable state after construction and is safe for
// concurrent use without locking.
package recommend
