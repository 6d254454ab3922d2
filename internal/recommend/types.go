// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

package recommend

import (
	"errors"
	"slices"

	"github.com/tomtom215/stylematch/internal/catalog"
)

// Attribute defaults applied when the request leaves a field empty.
const (
	DefaultPersonalStyle = "versatile"
	DefaultAgeGroup      = "adult"
	DefaultGender        = "unisex"
)

// Validation failures. The messages are part of the response contract and are
// returned to callers verbatim.
var (
	//nolint:staticcheck // ST1005: capitalized message is returned to callers as-is
	ErrAttributesRequired = errors.New("Face shape and hair type are required")

	//nolint:staticcheck // ST1005: capitalized message is returned to callers as-is
	ErrAnalysisFieldsRequired = errors.New("Style name, face shape and hair type are required")
)

// Factor identifies one scoring dimension.
type Factor string

const (
	// FactorFaceShape scores the style against the face-shape rule table.
	FactorFaceShape Factor = "face_shape"
	// FactorHairType scores the style against the hair-type rule table.
	FactorHairType Factor = "hair_type"
	// FactorPersonalStyle scores the style against the style profiles.
	FactorPersonalStyle Factor = "personal_style"
	// FactorAgeSuitability scores the style against the age-group allow-list.
	FactorAgeSuitability Factor = "age_suitability"
	// FactorGenderSuitability scores the style against the gender allow-list.
	FactorGenderSuitability Factor = "gender_suitability"
	// FactorTrend carries a weight in the default table but no scorer produces it.
	FactorTrend Factor = "trend_factor"
)

// weightedFactors lists every factor that may carry a weight.
var weightedFactors = []Factor{
	FactorFaceShape,
	FactorHairType,
	FactorPersonalStyle,
	FactorAgeSuitability,
	FactorGenderSuitability,
	FactorTrend,
}

// KnownFactor reports whether name is a factor that may carry a weight.
func KnownFactor(name string) bool {
	return slices.Contains(weightedFactors, Factor(name))
}

// Attributes are the request inputs for a recommendation.
type Attributes struct {
	// FaceShape is the client's face shape (oval, round, square, ...). Required.
	FaceShape string `json:"face_shape" validate:"required"`

	// HairType is the client's hair type (straight, wavy, curly, ...). Required.
	HairType string `json:"hair_type" validate:"required"`

	// PersonalStyle names a style profile. Defaults to "versatile".
	PersonalStyle string `json:"personal_style,omitempty"`

	// AgeGroup is teen, young_adult, adult or mature. Defaults to "adult",
	// or to the group derived from Age when Age is set.
	AgeGroup string `json:"age_group,omitempty"`

	// Age is optional and only used to derive AgeGroup.
	Age int `json:"age,omitempty"`

	// Gender is female, male or unisex. Defaults to "unisex".
	Gender string `json:"gender,omitempty"`

	// HairLength enables the length hard filter when set.
	HairLength string `json:"hair_length,omitempty"`
}

// WithDefaults returns a copy with every optional field resolved.
//
//nolint:gocritic // value receiver keeps the caller's attributes untouched
func (a Attributes) WithDefaults() Attributes {
	if a.PersonalStyle == "" {
		a.PersonalStyle = DefaultPersonalStyle
	}
	if a.AgeGroup == "" {
		if group, ok := AgeGroupForAge(a.Age); ok {
			a.AgeGroup = group
		} else {
			a.AgeGroup = DefaultAgeGroup
		}
	}
	if a.Gender == "" {
		a.Gender = DefaultGender
	}
	return a
}

// ageRange is an inclusive age span belonging to an age group.
type ageRange struct {
	group    string
	min, max int
}

var ageRanges = []ageRange{
	{group: "teen", min: 13, max: 19},
	{group: "young_adult", min: 20, max: 35},
	{group: "adult", min: 36, max: 55},
	{group: "mature", min: 56, max: 100},
}

// AgeGroupForAge maps an age in years to its age group.
// Returns false for ages outside every defined range.
func AgeGroupForAge(age int) (string, bool) {
	for _, r := range ageRanges {
		if age >= r.min && age <= r.max {
			return r.group, true
		}
	}
	return "", false
}

// FactorScores holds the per-factor scores for one style, each in [0, 1].
type FactorScores struct {
	FaceShape         float64 `json:"face_shape"`
	HairType          float64 `json:"hair_type"`
	PersonalStyle     float64 `json:"personal_style"`
	AgeSuitability    float64 `json:"age_suitability"`
	GenderSuitability float64 `json:"gender_suitability"`
}

// Each calls fn for every factor in a fixed order.
func (s FactorScores) Each(fn func(f Factor, score float64)) {
	fn(FactorFaceShape, s.FaceShape)
	fn(FactorHairType, s.HairType)
	fn(FactorPersonalStyle, s.PersonalStyle)
	fn(FactorAgeSuitability, s.AgeSuitability)
	fn(FactorGenderSuitability, s.GenderSuitability)
}

// Recommendation is one ranked, annotated style.
type Recommendation struct {
	StyleName             string       `json:"style_name"`
	DisplayName           string       `json:"display_name"`
	ConfidenceScore       float64      `json:"confidence_score"`
	FaceShapeMatch        string       `json:"face_shape_match"`
	HairTypeCompatibility string       `json:"hair_type_compatibility"`
	StyleAlignment        string       `json:"style_alignment"`
	MaintenanceLevel      string       `json:"maintenance_level"`
	StylingTime           string       `json:"styling_time"`
	ProfessionalRating    string       `json:"professional_rating"`
	Description           string       `json:"description"`
	Factors               FactorScores `json:"factor_scores"`
}

// Result is the output of the filter and rank pipeline.
type Result struct {
	// Recommendations is sorted by descending confidence and bounded by Config.MaxResults.
	Recommendations []Recommendation `json:"recommendations"`

	// TotalCandidates is the size of the candidate universe.
	TotalCandidates int `json:"total_candidates"`

	// FilteredByLength counts candidates dropped by the hair length filter.
	FilteredByLength int `json:"filtered_by_length"`

	// BelowThreshold counts candidates dropped for scoring at or below Config.MinScore.
	BelowThreshold int `json:"below_threshold"`
}

// Overview is the templated analysis returned with every recommendation list.
type Overview struct {
	Strengths       string `json:"strengths"`
	Considerations  string `json:"considerations"`
	TrendAlignment  string `json:"trend_alignment"`
	ProfessionalTip string `json:"professional_tip"`
}

// AnalysisRequest asks for a compatibility analysis of a single style.
type AnalysisRequest struct {
	StyleName string `json:"style_name" validate:"required"`
	FaceShape string `json:"face_shape" validate:"required"`
	HairType  string `json:"hair_type" validate:"required"`
}

// StyleBreakdown describes a style independent of the client.
type StyleBreakdown struct {
	Description         string   `json:"description"`
	BestFor             string   `json:"best_for"`
	Maintenance         string   `json:"maintenance"`
	StylingTips         []string `json:"styling_tips"`
	ProductsRecommended []string `json:"products_recommended"`
}

// Analysis is the single-style compatibility report.
type Analysis struct {
	StyleAnalysis          StyleBreakdown `json:"style_analysis"`
	FaceShapeCompatibility string         `json:"face_shape_compatibility"`
	HairTypeRequirements   []string       `json:"hair_type_requirements"`
	DailyMaintenance       string         `json:"daily_maintenance"`
	ProfessionalOpinion    string         `json:"professional_opinion"`
	OverallScore           float64        `json:"overall_score"`
}

// TrendingStyle is one entry of a seasonal trend list.
type TrendingStyle struct {
	StyleName        string `json:"style_name"`
	DisplayName      string `json:"display_name"`
	Description      string `json:"description"`
	PopularityReason string `json:"popularity_reason"`
}

// TrendReport lists the trending styles for a season.
type TrendReport struct {
	Season         string          `json:"season"`
	TrendingStyles []TrendingStyle `json:"trending_styles"`
	SeasonalAdvice string          `json:"seasonal_advice"`
}

// SeasonalTrends is the fixed trend summary attached to recommendation responses.
type SeasonalTrends = catalog.TrendSummary
