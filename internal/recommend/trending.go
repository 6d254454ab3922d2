// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

package recommend

import "github.com/tomtom215/stylematch/internal/catalog"

const (
	defaultTrendReason    = "Popular style for its versatility and ease"
	defaultSeasonalAdvice = "Adapt your style to weather conditions"
)

// Trending lists the trending styles for a season. An empty season means
// "all"; an unknown season is echoed back with the "all" list.
func (e *Engine) Trending(season string) TrendReport {
	if season == "" {
		season = catalog.SeasonAll
	}

	styles := e.catalog.TrendingFor(season)
	report := TrendReport{
		Season:         season,
		TrendingStyles: make([]TrendingStyle, 0, len(styles)),
		SeasonalAdvice: defaultSeasonalAdvice,
	}
	if advice, ok := e.catalog.SeasonalAdvice[season]; ok {
		report.SeasonalAdvice = advice
	}

	for _, style := range styles {
		reason, ok := e.catalog.TrendReasons[style]
		if !ok {
			reason = defaultTrendReason
		}
		report.TrendingStyles = append(report.TrendingStyles, TrendingStyle{
			StyleName:        style,
			DisplayName:      DisplayName(style),
			Description:      e.describe(style, DefaultStyleDescription),
			PopularityReason: reason,
		})
	}

	return report
}
