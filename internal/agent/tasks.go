// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

package agent

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/stylematch/internal/recommend"
)

// Task kinds accepted by the agent.
const (
	KindRecommend = "get_hairstyle_recommendations"
	KindAnalyze   = "analyze_style_compatibility"
	KindTrending  = "get_trending_styles"
)

// SupportedTasks lists the task kinds in the order they are advertised.
var SupportedTasks = []string{KindRecommend, KindAnalyze, KindTrending}

// Task is one of RecommendTask, AnalyzeTask or TrendingTask.
type Task interface {
	// Kind returns the wire name of the task.
	Kind() string
	task()
}

// RecommendTask asks for a ranked recommendation list.
type RecommendTask struct {
	Attributes recommend.Attributes
}

// AnalyzeTask asks for a single-style compatibility analysis.
type AnalyzeTask struct {
	Request recommend.AnalysisRequest
}

// TrendingTask asks for the trending styles of a season.
type TrendingTask struct {
	Season string `json:"season,omitempty"`
}

func (RecommendTask) Kind() string { return KindRecommend }
func (AnalyzeTask) Kind() string   { return KindAnalyze }
func (TrendingTask) Kind() string  { return KindTrending }

func (RecommendTask) task() {}
func (AnalyzeTask) task()   {}
func (TrendingTask) task()  {}

// Envelope is the wire form of a task.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// UnsupportedTaskError reports a task kind the agent does not handle.
type UnsupportedTaskError struct {
	Kind string
}

func (e *UnsupportedTaskError) Error() string {
	return "Unsupported task: " + e.Kind
}

// ParseEnvelope decodes a raw envelope document.
func ParseEnvelope(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("failed to decode task envelope: %w", err)
	}
	return env, nil
}

// ParseTask decodes payload into the task named by kind. An empty or null
// payload yields the zero task, which the engine then rejects or defaults.
func ParseTask(kind string, payload []byte) (Task, error) {
	switch kind {
	case KindRecommend:
		var t RecommendTask
		if err := decodePayload(kind, payload, &t.Attributes); err != nil {
			return nil, err
		}
		return t, nil
	case KindAnalyze:
		var t AnalyzeTask
		if err := decodePayload(kind, payload, &t.Request); err != nil {
			return nil, err
		}
		return t, nil
	case KindTrending:
		var t TrendingTask
		if err := decodePayload(kind, payload, &t); err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, &UnsupportedTaskError{Kind: kind}
	}
}

func decodePayload(kind string, payload []byte, v interface{}) error {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 || bytes.Equal(payload, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("invalid %s payload: %w", kind, err)
	}
	return nil
}
