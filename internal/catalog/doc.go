// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

// Package catalog holds the static rule tables and style metadata consumed by
// the recommendation engine.
//
// # Tables
//
//   - Face-shape rules: face shape -> tier (excellent, good, fair, avoid) -> styles
//   - Hair-type rules: hair type -> tier (perfect, good, requires_styling) -> styles
//   - Style profiles: personal style -> recommended styles, lengths, maintenance
//   - Style details: per-style description, maintenance, styling time, lengths
//   - Age and gender allow-lists, seasonal trend lists and descriptive text
//
// A Catalog is read-only once built. Default returns the built-in tables; Load
// reads a complete replacement catalog from a YAML file via koanf.
//
// All accessors are total: unknown keys resolve to empty tables rather than
// errors, so scorers can fall back to their documented neutral defaults.
package catalog
