// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

package catalog

// Default returns the built-in catalog. Each call builds fresh maps so callers
// may not observe each other's modifications.
func Default() *Catalog {
	return &Catalog{
		FaceShapes:      defaultFaceShapes(),
		HairTypes:       defaultHairTypes(),
		Profiles:        defaultProfiles(),
		Styles:          defaultStyles(),
		AgeGroups:       defaultAgeGroups(),
		Genders:         defaultGenders(),
		Seasons:         defaultSeasons(),
		SeasonalAdvice:  defaultSeasonalAdvice(),
		TrendReasons:    defaultTrendReasons(),
		Trends:          defaultTrends(),
		StylingTips:     defaultStylingTips(),
		Products:        defaultProducts(),
		FaceShapeAdvice: defaultFaceShapeAdvice(),
		HairTypeAdvice:  defaultHairTypeAdvice(),
	}
}

func defaultFaceShapes() RuleTable {
	return RuleTable{
		"oval": {
			TierExcellent: {"long_layers", "side_swept_bangs", "textured_bob", "beach_waves", "curtain_bangs", "soft_layers"},
			TierGood:      {"blunt_bob", "pixie", "shag_cut", "wispy_bangs", "messy_bun"},
			TierFair:      {"afro", "mohawk", "blunt_bangs", "asymmetrical_bob"},
			TierAvoid:     {"heavy_bangs", "center_parts", "helmet_hair"},
		},
		"round": {
			TierExcellent: {"angled_bob", "asymmetrical", "long_layers", "textured_crop", "side_swept_bangs"},
			TierGood:      {"soft_layers", "wispy_bangs", "layered_shag", "high_pony"},
			TierFair:      {"blunt_bob", "curtain_bangs", "pixie_cut"},
			TierAvoid:     {"chin_length_blunt", "round_bobs", "full_bangs"},
		},
		"square": {
			TierExcellent: {"long_layers", "side_swept_bangs", "curly_shag", "soft_waves"},
			TierGood:      {"wispy_bangs", "curtain_bangs", "textured_bob", "beach_waves"},
			TierFair:      {"blunt_bob", "pixie", "asymmetrical"},
			TierAvoid:     {"straight_blunt", "heavy_bangs", "geometric_cuts"},
		},
		"heart": {
			TierExcellent: {"side_swept_bangs", "layered_bob", "curtain_bangs", "chin_length_bob"},
			TierGood:      {"long_layers", "soft_waves", "pixie_with_bangs", "messy_bun"},
			TierFair:      {"blunt_bangs", "sleek_pony", "textured_crop"},
			TierAvoid:     {"top_heavy_styles", "full_bangs", "short_spiky"},
		},
		"diamond": {
			TierExcellent: {"curtain_bangs", "soft_layers", "chin_length_bob", "wispy_bangs"},
			TierGood:      {"textured_bob", "side_swept_bangs", "beach_waves", "pixie"},
			TierFair:      {"blunt_bangs", "sleek_styles", "geometric_bob"},
			TierAvoid:     {"width_adding_styles", "full_bangs", "top_volume"},
		},
		"oblong": {
			TierExcellent: {"curtain_bangs", "layered_shag", "curly_bob", "side_swept_bangs"},
			TierGood:      {"blunt_bob", "soft_waves", "textured_crop", "wispy_bangs"},
			TierFair:      {"long_straight", "sleek_pony", "geometric_cuts"},
			TierAvoid:     {"height_adding_styles", "top_knots", "vertical_lines"},
		},
	}
}

func defaultHairTypes() RuleTable {
	return RuleTable{
		"straight": {
			TierPerfect:         {"blunt_bob", "long_layers", "micro_bangs", "sleek_pony", "geometric_bob", "asymmetrical_cut"},
			TierGood:            {"textured_bob", "beach_waves", "soft_layers", "curtain_bangs", "side_swept_bangs"},
			TierRequiresStyling: {"curly_shag", "afro", "defined_curls", "voluminous_curls"},
		},
		"wavy": {
			TierPerfect:         {"beach_waves", "layered_shag", "textured_bob", "curtain_bangs", "soft_layers"},
			TierGood:            {"long_layers", "side_swept_bangs", "messy_bun", "wispy_bangs"},
			TierRequiresStyling: {"blunt_bob", "sleek_styles", "geometric_cuts"},
		},
		"curly": {
			TierPerfect:         {"curly_shag", "layered_cut", "defined_curls", "afro", "curly_bob"},
			TierGood:            {"long_layers", "side_swept_bangs", "curtain_bangs", "pineapple_updo"},
			TierRequiresStyling: {"sleek_styles", "blunt_bob", "straight_looks"},
		},
		"coily": {
			TierPerfect:         {"afro", "twist_out", "braid_out", "bantu_knots", "fade_cut"},
			TierGood:            {"curly_shag", "layered_cut", "defined_curls", "pineapple_updo"},
			TierRequiresStyling: {"sleek_styles", "straight_looks", "fine_layers"},
		},
		"fine": {
			TierPerfect:         {"blunt_bob", "textured_bob", "pixie_cut", "layered_shag", "wispy_bangs"},
			TierGood:            {"soft_layers", "side_swept_bangs", "curtain_bangs", "beach_waves"},
			TierRequiresStyling: {"heavy_layers", "thick_bangs", "voluminous_styles"},
		},
		"thick": {
			TierPerfect:         {"long_layers", "textured_bob", "layered_shag", "curtain_bangs", "side_swept_bangs"},
			TierGood:            {"blunt_bob", "beach_waves", "soft_layers", "messy_bun"},
			TierRequiresStyling: {"fine_layers", "sleek_styles", "flat_looks"},
		},
	}
}

func defaultProfiles() map[string]StyleProfile {
	return map[string]StyleProfile{
		"professional": {
			Description:       "Elegant styles appropriate for work environments",
			RecommendedStyles: []string{"blunt_bob", "long_layers", "sleek_pony", "soft_layers", "textured_bob"},
			HairLengths:       []string{"short", "medium", "long"},
			MaintenanceLevel:  "medium",
			StylingTime:       "10-20 minutes",
		},
		"bohemian": {
			Description:       "Natural, effortless styles with movement",
			RecommendedStyles: []string{"beach_waves", "layered_shag", "curtain_bangs", "messy_bun", "side_swept_bangs"},
			HairLengths:       []string{"medium", "long"},
			MaintenanceLevel:  "low",
			StylingTime:       "5-15 minutes",
		},
		"edgy": {
			Description:       "Modern, asymmetrical and bold cuts",
			RecommendedStyles: []string{"asymmetrical_cut", "pixie_cut", "textured_crop", "undercut", "mohawk"},
			HairLengths:       []string{"short", "medium"},
			MaintenanceLevel:  "high",
			StylingTime:       "15-25 minutes",
		},
		"romantic": {
			Description:       "Soft, feminine styles with volume",
			RecommendedStyles: []string{"soft_waves", "curtain_bangs", "wispy_bangs", "long_layers", "beach_waves"},
			HairLengths:       []string{"medium", "long"},
			MaintenanceLevel:  "medium",
			StylingTime:       "15-20 minutes",
		},
		"minimalist": {
			Description:       "Simple, functional low-maintenance styles",
			RecommendedStyles: []string{"blunt_bob", "pixie_cut", "sleek_pony", "textured_crop", "soft_layers"},
			HairLengths:       []string{"short", "medium"},
			MaintenanceLevel:  "low",
			StylingTime:       "5-10 minutes",
		},
		"glamorous": {
			Description:       "Sophisticated and striking styles",
			RecommendedStyles: []string{"voluminous_curls", "sleek_styles", "defined_curls", "beach_waves", "soft_waves"},
			HairLengths:       []string{"medium", "long"},
			MaintenanceLevel:  "high",
			StylingTime:       "20-30 minutes",
		},
		"natural": {
			Description:       "Styles that enhance natural hair texture",
			RecommendedStyles: []string{"afro", "defined_curls", "beach_waves", "curly_shag", "twist_out"},
			HairLengths:       []string{"short", "medium", "long"},
			MaintenanceLevel:  "low",
			StylingTime:       "5-15 minutes",
		},
	}
}

func defaultStyles() map[string]StyleDetail {
	return map[string]StyleDetail{
		"long_layers": {
			Description:   "Long layers that add movement and volume",
			FaceShapes:    []string{"oval", "square", "round", "heart"},
			HairTypes:     []string{"straight", "wavy", "curly", "thick"},
			Maintenance:   "medium",
			StylingTime:   "15-20 minutes",
			HairLengths:   []string{"long"},
			StyleProfiles: []string{"professional", "romantic", "bohemian"},
		},
		"blunt_bob": {
			Description:   "Straight and defined bob cut",
			FaceShapes:    []string{"oval", "square"},
			HairTypes:     []string{"straight", "fine", "thick"},
			Maintenance:   "high",
			StylingTime:   "10-15 minutes",
			HairLengths:   []string{"short", "medium"},
			StyleProfiles: []string{"professional", "minimalist", "glamorous"},
		},
		"textured_bob": {
			Description:   "Bob with texture and movement",
			FaceShapes:    []string{"oval", "round", "square"},
			HairTypes:     []string{"wavy", "straight", "fine"},
			Maintenance:   "medium",
			StylingTime:   "10-15 minutes",
			HairLengths:   []string{"short", "medium"},
			StyleProfiles: []string{"professional", "bohemian", "edgy"},
		},
		"curtain_bangs": {
			Description:   "Bangs that frame the face",
			FaceShapes:    []string{"oval", "heart", "diamond", "oblong"},
			HairTypes:     []string{"straight", "wavy", "curly"},
			Maintenance:   "high",
			StylingTime:   "5-10 minutes",
			HairLengths:   []string{"short", "medium", "long"},
			StyleProfiles: []string{"romantic", "bohemian", "professional"},
		},
		"pixie_cut": {
			Description:   "Short and modern cut",
			FaceShapes:    []string{"oval", "heart", "diamond"},
			HairTypes:     []string{"fine", "straight", "wavy"},
			Maintenance:   "high",
			StylingTime:   "5-10 minutes",
			HairLengths:   []string{"short"},
			StyleProfiles: []string{"edgy", "minimalist", "professional"},
		},
		"beach_waves": {
			Description:   "Natural and effortless waves",
			FaceShapes:    []string{"oval", "square", "round"},
			HairTypes:     []string{"wavy", "straight", "thick"},
			Maintenance:   "low",
			StylingTime:   "15-20 minutes",
			HairLengths:   []string{"medium", "long"},
			StyleProfiles: []string{"bohemian", "romantic", "natural"},
		},
		"afro": {
			Description:   "Natural style for afro hair",
			FaceShapes:    []string{"oval", "diamond"},
			HairTypes:     []string{"coily", "curly"},
			Maintenance:   "low",
			StylingTime:   "5-10 minutes",
			HairLengths:   []string{"short", "medium", "long"},
			StyleProfiles: []string{"natural", "bohemian"},
		},
	}
}

func defaultAgeGroups() map[string][]string {
	return map[string][]string{
		"teen":        {"beach_waves", "side_swept_bangs", "messy_bun", "curtain_bangs"},
		"young_adult": {"long_layers", "textured_bob", "blunt_bob", "soft_layers"},
		"adult":       {"soft_layers", "blunt_bob", "long_layers", "curtain_bangs"},
		"mature":      {"soft_layers", "blunt_bob", "pixie_cut", "wispy_bangs"},
	}
}

func defaultGenders() map[string][]string {
	return map[string][]string{
		"female": {"blunt_bob", "long_layers", "curtain_bangs", "beach_waves"},
		"male":   {"textured_crop", "fade_cut", "side_swept_bangs", "soft_layers"},
	}
}

func defaultSeasons() map[string][]string {
	return map[string][]string{
		"spring":  {"curtain_bangs", "soft_layers", "beach_waves", "wispy_bangs"},
		"summer":  {"textured_bob", "messy_bun", "side_swept_bangs", "curly_shag"},
		"fall":    {"blunt_bob", "long_layers", "curtain_bangs", "soft_waves"},
		"winter":  {"layered_shag", "blunt_bob", "sleek_pony", "defined_curls"},
		SeasonAll: {"curtain_bangs", "textured_bob", "soft_layers", "beach_waves"},
	}
}

func defaultSeasonalAdvice() map[string]string {
	return map[string]string{
		"spring": "Fresh styles that allow movement",
		"summer": "Cuts that keep hair away from the face",
		"fall":   "Layers that add volume for cooler weather",
		"winter": "Styles that protect from cold and dryness",
	}
}

func defaultTrendReasons() map[string]string {
	return map[string]string{
		"curtain_bangs": "Versatile and flattering for multiple face shapes",
		"textured_bob":  "Modern and easy to maintain",
		"soft_layers":   "Adds movement without compromising length",
	}
}

func defaultTrends() TrendSummary {
	return TrendSummary{
		Current:  []string{"curtain_bangs", "textured_bob", "soft_layers"},
		Emerging: []string{"micro_bangs", "wolf_cut", "butterfly_layers"},
		Classic:  []string{"blunt_bob", "long_layers", "pixie_cut"},
	}
}

func defaultStylingTips() map[string][]string {
	return map[string][]string{
		"curtain_bangs": {"Use flat iron to create soft waves", "Apply texturizer for movement"},
		"blunt_bob":     {"Keep ends straight with flat iron", "Use serum for shine"},
		"beach_waves":   {"Apply salt spray on damp hair", "Scrunch with fingers while drying"},
	}
}

func defaultProducts() map[string][]string {
	return map[string][]string{
		"curtain_bangs": {"Texturizer", "Medium hold spray"},
		"blunt_bob":     {"Anti-frizz serum", "Ceramic flat iron"},
		"beach_waves":   {"Salt spray", "Heat protectant"},
	}
}

func defaultFaceShapeAdvice() map[string]string {
	return map[string]string{
		"round":  "Avoid side volume that widens the face",
		"oval":   "You can experiment with almost any style",
		"square": "Prefer styles that soften the jawline",
		"heart":  "Focus on balancing the wide forehead",
	}
}

func defaultHairTypeAdvice() map[string]string {
	return map[string]string{
		"fine":  "Use layers to create volume and movement",
		"thick": "Consider thinning for better manageability",
	}
}
