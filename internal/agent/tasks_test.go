// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

package agent

import (
	"errors"
	"testing"
)

func TestParseEnvelope(t *testing.T) {
	t.Parallel()

	env, err := ParseEnvelope([]byte(`{"type":"get_trending_styles","payload":{"season":"winter"}}`))
	if err != nil {
		t.Fatalf("ParseEnvelope() error = %v", err)
	}
	if env.Type != KindTrending {
		t.Errorf("Type = %q, want %q", env.Type, KindTrending)
	}

	task, err := ParseTask(env.Type, env.Payload)
	if err != nil {
		t.Fatalf("ParseTask() error = %v", err)
	}
	trending, ok := task.(TrendingTask)
	if !ok {
		t.Fatalf("task = %T, want TrendingTask", task)
	}
	if trending.Season != "winter" {
		t.Errorf("Season = %q, want winter", trending.Season)
	}

	if _, err := ParseEnvelope([]byte(`{"type":`)); err == nil {
		t.Error("ParseEnvelope() expected error for truncated document")
	}
}

func TestParseTask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		kind     string
		payload  string
		wantKind string
		wantErr  bool
	}{
		{name: "recommend", kind: KindRecommend, payload: `{"face_shape":"round","hair_type":"curly","age":27}`, wantKind: KindRecommend},
		{name: "analyze", kind: KindAnalyze, payload: `{"style_name":"pixie_cut"}`, wantKind: KindAnalyze},
		{name: "trending null payload", kind: KindTrending, payload: `null`, wantKind: KindTrending},
		{name: "trending empty payload", kind: KindTrending, payload: ``, wantKind: KindTrending},
		{name: "wrong field type", kind: KindAnalyze, payload: `{"style_name":true}`, wantErr: true},
		{name: "not an object", kind: KindRecommend, payload: `[1,2]`, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			task, err := ParseTask(tt.kind, []byte(tt.payload))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTask() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if task.Kind() != tt.wantKind {
				t.Errorf("Kind() = %q, want %q", task.Kind(), tt.wantKind)
			}
		})
	}
}

func TestParseTask_RecommendPayload(t *testing.T) {
	t.Parallel()

	task, err := ParseTask(KindRecommend, []byte(`{"face_shape":"round","hair_type":"curly","age":27,"hair_length":"short"}`))
	if err != nil {
		t.Fatalf("ParseTask() error = %v", err)
	}
	attrs := task.(RecommendTask).Attributes
	if attrs.FaceShape != "round" || attrs.HairType != "curly" {
		t.Errorf("Attributes = %+v", attrs)
	}
	if attrs.Age != 27 || attrs.HairLength != "short" {
		t.Errorf("Attributes = %+v", attrs)
	}
}

func TestParseTask_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := ParseTask("foo", nil)

	var unsupported *UnsupportedTaskError
	if !errors.As(err, &unsupported) {
		t.Fatalf("ParseTask() error = %v, want *UnsupportedTaskError", err)
	}
	if unsupported.Kind != "foo" {
		t.Errorf("Kind = %q, want foo", unsupported.Kind)
	}
	if err.Error() != "Unsupported task: foo" {
		t.Errorf("Error() = %q", err.Error())
	}
}
