// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

package catalog

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// Face-shape tier names, in priority order.
const (
	TierExcellent = "excellent"
	TierGood      = "good"
	TierFair      = "fair"
	TierAvoid     = "avoid"
)

// Hair-type tier names, in priority order. TierGood is shared with face shapes.
const (
	TierPerfect         = "perfect"
	TierRequiresStyling = "requires_styling"
)

// SeasonAll is the trending list used when no season (or an unknown one) is requested.
const SeasonAll = "all"

// TierTable maps a tier name to the styles listed in it.
type TierTable map[string][]string

// Contains reports whether style is listed in the named tier.
// A missing tier or a nil table contains nothing.
func (t TierTable) Contains(tier, style string) bool {
	return slices.Contains(t[tier], style)
}

// RuleTable maps a category key (face shape or hair type) to its tiers.
type RuleTable map[string]TierTable

// Tiers returns the tier table for a category key, or nil when the key is unknown.
func (r RuleTable) Tiers(key string) TierTable {
	return r[key]
}

// Keys returns the category keys in ascending order.
func (r RuleTable) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// StyleProfile describes a personal style and the hairstyles that suit it.
type StyleProfile struct {
	Description       string   `koanf:"description" json:"description"`
	RecommendedStyles []string `koanf:"recommended_styles" json:"recommended_styles"`
	HairLengths       []string `koanf:"hair_lengths" json:"hair_lengths"`
	MaintenanceLevel  string   `koanf:"maintenance_level" json:"maintenance_level"`
	StylingTime       string   `koanf:"styling_time" json:"styling_time"`
}

// Recommends reports whether style is in the profile's recommended set.
func (p StyleProfile) Recommends(style string) bool {
	return slices.Contains(p.RecommendedStyles, style)
}

// StyleDetail is the metadata kept for a single hairstyle.
type StyleDetail struct {
	Description   string   `koanf:"description" json:"description"`
	FaceShapes    []string `koanf:"face_shapes" json:"face_shapes"`
	HairTypes     []string `koanf:"hair_types" json:"hair_types"`
	Maintenance   string   `koanf:"maintenance" json:"maintenance"`
	StylingTime   string   `koanf:"styling_time" json:"styling_time"`
	HairLengths   []string `koanf:"hair_lengths" json:"hair_lengths"`
	StyleProfiles []string `koanf:"style_profiles" json:"style_profiles"`
}

// SupportsLength reports whether the style can be worn at the given length.
// A style that declares no lengths is compatible with every length.
func (d StyleDetail) SupportsLength(length string) bool {
	if len(d.HairLengths) == 0 {
		return true
	}
	return slices.Contains(d.HairLengths, length)
}

// TrendSummary lists the styles shown alongside every recommendation response.
type TrendSummary struct {
	Current  []string `koanf:"current" json:"current_trends"`
	Emerging []string `koanf:"emerging" json:"emerging_trends"`
	Classic  []string `koanf:"classic" json:"classic_styles"`
}

// Catalog bundles every static table the engine reads.
type Catalog struct {
	FaceShapes RuleTable               `koanf:"face_shapes"`
	HairTypes  RuleTable               `koanf:"hair_types"`
	Profiles   map[string]StyleProfile `koanf:"style_profiles"`
	Styles     map[string]StyleDetail  `koanf:"styles"`

	// AgeGroups and Genders are allow-lists of styles per group.
	AgeGroups map[string][]string `koanf:"age_groups"`
	Genders   map[string][]string `koanf:"genders"`

	// Seasons maps a season name to its trending styles. Must contain SeasonAll.
	Seasons        map[string][]string `koanf:"seasons"`
	SeasonalAdvice map[string]string   `koanf:"seasonal_advice"`
	TrendReasons   map[string]string   `koanf:"trend_reasons"`
	Trends         TrendSummary        `koanf:"trends"`

	StylingTips     map[string][]string `koanf:"styling_tips"`
	Products        map[string][]string `koanf:"products"`
	FaceShapeAdvice map[string]string   `koanf:"face_shape_advice"`
	HairTypeAdvice  map[string]string   `koanf:"hair_type_advice"`
}

// Style returns the detail entry for a style and whether it exists.
func (c *Catalog) Style(id string) (StyleDetail, bool) {
	d, ok := c.Styles[id]
	return d, ok
}

// Profile returns the named style profile and whether it exists.
func (c *Catalog) Profile(name string) (StyleProfile, bool) {
	p, ok := c.Profiles[name]
	return p, ok
}

// InAnyProfile reports whether any style profile recommends the style.
func (c *Catalog) InAnyProfile(style string) bool {
	for _, p := range c.Profiles {
		if p.Recommends(style) {
			return true
		}
	}
	return false
}

// AgeGroupAllows reports whether the style is on the allow-list for the age group.
func (c *Catalog) AgeGroupAllows(group, style string) bool {
	return slices.Contains(c.AgeGroups[group], style)
}

// GenderAllows reports whether the style is on the allow-list for the gender.
func (c *Catalog) GenderAllows(gender, style string) bool {
	return slices.Contains(c.Genders[gender], style)
}

// TrendingFor returns the trending styles for a season, falling back to SeasonAll.
func (c *Catalog) TrendingFor(season string) []string {
	if styles, ok := c.Seasons[season]; ok {
		return styles
	}
	return c.Seasons[SeasonAll]
}

// Validate checks the structural requirements the engine relies on.
func (c *Catalog) Validate() error {
	if len(c.FaceShapes) == 0 {
		return errors.New("catalog: face_shapes must define at least one face shape")
	}
	if len(c.HairTypes) == 0 {
		return errors.New("catalog: hair_types must define at least one hair type")
	}
	if _, ok := c.Seasons[SeasonAll]; !ok {
		return fmt.Errorf("catalog: seasons must define the %q season", SeasonAll)
	}
	return nil
}
