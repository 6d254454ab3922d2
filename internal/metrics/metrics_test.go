// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordTask(t *testing.T) {
	tests := []struct {
		task    string
		outcome string
	}{
		{"get_hairstyle_recommendations", OutcomeSuccess},
		{"get_hairstyle_recommendations", OutcomeInvalid},
		{"analyze_style_compatibility", OutcomeError},
		{"foo", OutcomeUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.task+"_"+tt.outcome, func(t *testing.T) {
			counter := TaskRequestsTotal.WithLabelValues(tt.task, tt.outcome)
			before := testutil.ToFloat64(counter)

			RecordTask(tt.task, tt.outcome, 2*time.Millisecond)

			if got := testutil.ToFloat64(counter); got != before+1 {
				t.Errorf("task counter = %f, want %f", got, before+1)
			}
		})
	}
}

func TestRecordRecommendations(t *testing.T) {
	length := CandidatesFiltered.WithLabelValues(ReasonHairLength)
	threshold := CandidatesFiltered.WithLabelValues(ReasonThreshold)
	beforeLength := testutil.ToFloat64(length)
	beforeThreshold := testutil.ToFloat64(threshold)

	RecordRecommendations(8, 3, 0)
	RecordRecommendations(5, 0, 2)

	if got := testutil.ToFloat64(length); got != beforeLength+3 {
		t.Errorf("hair_length drops = %f, want %f", got, beforeLength+3)
	}
	if got := testutil.ToFloat64(threshold); got != beforeThreshold+2 {
		t.Errorf("threshold drops = %f, want %f", got, beforeThreshold+2)
	}
	if got := testutil.CollectAndCount(RecommendationsReturned); got != 1 {
		t.Errorf("CollectAndCount(RecommendationsReturned) = %d, want 1", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	RecordTask("get_trending_styles", OutcomeSuccess, time.Millisecond)

	path := filepath.Join(t.TempDir(), "stylematch.prom")
	if err := WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), `stylematch_task_requests_total{outcome="success",task="get_trending_styles"}`) {
		t.Errorf("textfile missing task counter:\n%s", data)
	}
}

func TestWriteTextfile_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "stylematch.prom")
	if err := WriteTextfile(path); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestMetricLint(t *testing.T) {
	RecordTask("get_hairstyle_recommendations", OutcomeSuccess, time.Millisecond)
	RecordRecommendations(4, 1, 1)

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer,
		"stylematch_task_requests_total",
		"stylematch_task_duration_seconds",
		"stylematch_recommendations_returned",
		"stylematch_candidates_filtered_total",
	)
	if err != nil {
		t.Fatalf("GatherAndLint() error = %v", err)
	}
	for _, p := range problems {
		t.Errorf("metric lint problem: %s: %s", p.Metric, p.Text)
	}
}
