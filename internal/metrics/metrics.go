// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

// Package metrics provides Prometheus instrumentation for task processing.
//
// StyleMatch runs as a one-shot command, so metrics are not scraped over
// HTTP. Instead the default registry can be written to a node_exporter
// textfile collector directory with WriteTextfile after a task completes.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Task outcomes.
const (
	OutcomeSuccess     = "success"
	OutcomeInvalid     = "invalid"
	OutcomeUnsupported = "unsupported"
	OutcomeError       = "error"
)

// Candidate drop reasons.
const (
	ReasonHairLength = "hair_length"
	ReasonThreshold  = "threshold"
)

var (
	TaskRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylematch_task_requests_total",
			Help: "Total number of agent tasks processed",
		},
		[]string{"task", "outcome"},
	)

	TaskDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stylematch_task_duration_seconds",
			Help:    "Duration of agent task processing in seconds",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
		[]string{"task"},
	)

	RecommendationsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stylematch_recommendations_returned",
			Help:    "Number of recommendations returned per request",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 7, 8},
		},
	)

	CandidatesFiltered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylematch_candidates_filtered_total",
			Help: "Total number of candidate styles dropped before ranking",
		},
		[]string{"reason"},
	)
)

// RecordTask records the outcome and duration of one agent task.
func RecordTask(task, outcome string, duration time.Duration) {
	TaskRequestsTotal.WithLabelValues(task, outcome).Inc()
	TaskDuration.WithLabelValues(task).Observe(duration.Seconds())
}

// RecordRecommendations records the shape of one recommendation result.
func RecordRecommendations(returned, filteredByLength, belowThreshold int) {
	RecommendationsReturned.Observe(float64(returned))
	if filteredByLength > 0 {
		CandidatesFiltered.WithLabelValues(ReasonHairLength).Add(float64(filteredByLength))
	}
	if belowThreshold > 0 {
		CandidatesFiltered.WithLabelValues(ReasonThreshold).Add(float64(belowThreshold))
	}
}

// WriteTextfile writes every metric in the default registry to path in the
// Prometheus text format. The write is atomic.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
