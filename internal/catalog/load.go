// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

package catalog

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load returns the catalog stored at path, or the built-in catalog when path is empty.
//
// A catalog file replaces the built-in tables entirely; it is not merged with them.
// Keys mirror the koanf tags on Catalog:
//
//	face_shapes:
//	  oval:
//	    excellent: [long_layers, beach_waves]
//	    avoid: [helmet_hair]
//	hair_types:
//	  wavy:
//	    perfect: [beach_waves]
//	seasons:
//	  all: [beach_waves]
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load catalog file %s: %w", path, err)
	}

	cat := &Catalog{}
	if err := k.Unmarshal("", cat); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog %s: %w", path, err)
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	return cat, nil
}
