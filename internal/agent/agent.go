// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

package agent

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/stylematch/internal/logging"
	"github.com/tomtom215/stylematch/internal/metrics"
	"github.com/tomtom215/stylematch/internal/recommend"
)

// Agent identity reported in every response.
const (
	Name    = "HairRecommendation"
	Version = "1.0.0"
)

// taskUnknown labels metrics for task kinds outside SupportedTasks.
const taskUnknown = "unknown"

// Recommender is the engine surface the agent dispatches to.
// *recommend.Engine implements it.
type Recommender interface {
	Recommend(attrs recommend.Attributes) (*recommend.Result, error)
	Analyze(req recommend.AnalysisRequest) (*recommend.Analysis, error)
	Trending(season string) recommend.TrendReport
	Overview(faceShape, hairType, personal string) recommend.Overview
	CompatibilityScore() float64
	SeasonalTrends() recommend.SeasonalTrends
	ProfessionalAdvice(faceShape, hairType string) string
	BestMatches(faceShape, hairType, profile, length string) []string
}

// Response is the outcome of one task. Error is set only when Success is false.
type Response struct {
	Success   bool        `json:"success"`
	Error     string      `json:"error,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	AgentName string      `json:"agent_name"`
}

// RecommendationData is the payload of a successful recommendation task.
type RecommendationData struct {
	Recommendations    []recommend.Recommendation `json:"recommendations"`
	Analysis           recommend.Overview         `json:"analysis"`
	CompatibilityScore float64                    `json:"compatibility_score"`
	SeasonalTrends     recommend.SeasonalTrends   `json:"seasonal_trends"`
	ProfessionalAdvice string                     `json:"professional_advice"`
	BestMatches        []string                   `json:"best_matches"`
	TotalCandidates    int                        `json:"total_candidates"`
	FilteredByLength   int                        `json:"filtered_by_length"`
	BelowThreshold     int                        `json:"below_threshold"`
}

// Agent answers tasks using a Recommender. It holds no mutable state and is
// safe for concurrent use.
type Agent struct {
	rec    Recommender
	logger zerolog.Logger
}

// New creates an agent around rec.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New(rec Recommender, logger zerolog.Logger) *Agent {
	return &Agent{
		rec:    rec,
		logger: logger.With().Str("component", "agent").Logger(),
	}
}

// Name returns the agent name.
func (a *Agent) Name() string { return Name }

// Version returns the agent version.
func (a *Agent) Version() string { return Version }

// SupportedTasks returns the task kinds the agent handles.
func (a *Agent) SupportedTasks() []string { return slices.Clone(SupportedTasks) }

// Handle decodes an envelope and processes the task it carries.
func (a *Agent) Handle(ctx context.Context, env Envelope) Response {
	t, err := ParseTask(env.Type, env.Payload)
	if err != nil {
		ctx = a.requestContext(ctx)
		label := env.Type
		if !slices.Contains(SupportedTasks, label) {
			label = taskUnknown
		}
		resp, outcome := a.failure(ctx, label, err)
		metrics.RecordTask(label, outcome, 0)
		return resp
	}
	return a.Process(ctx, t)
}

// Process runs a parsed task. It never panics; a panic inside the engine is
// recovered and reported as a recommendation error.
func (a *Agent) Process(ctx context.Context, t Task) (resp Response) {
	ctx = a.requestContext(ctx)
	start := time.Now()

	label := taskUnknown
	if t != nil {
		label = t.Kind()
	}
	outcome := metrics.OutcomeSuccess

	defer func() {
		if r := recover(); r != nil {
			logging.Ctx(ctx).Error().
				Str("task", label).
				Interface("panic", r).
				Msg("task panicked")
			resp = Response{
				Error:     fmt.Sprintf("Recommendation error: %v", r),
				AgentName: Name,
			}
			outcome = metrics.OutcomeError
		}
		duration := time.Since(start)
		metrics.RecordTask(label, outcome, duration)
		logging.Ctx(ctx).Debug().
			Str("task", label).
			Str("outcome", outcome).
			Dur("duration", duration).
			Msg("task processed")
	}()

	data, err := a.dispatch(t)
	if err != nil {
		resp, outcome = a.failure(ctx, label, err)
		return resp
	}

	return Response{Success: true, Data: data, AgentName: Name}
}

func (a *Agent) dispatch(t Task) (interface{}, error) {
	switch t := t.(type) {
	case RecommendTask:
		return a.recommend(t)
	case AnalyzeTask:
		return a.rec.Analyze(t.Request)
	case TrendingTask:
		return a.rec.Trending(t.Season), nil
	case nil:
		return nil, errors.New("no task given")
	default:
		return nil, &UnsupportedTaskError{Kind: t.Kind()}
	}
}

//nolint:gocritic // task values are small and immutable
func (a *Agent) recommend(t RecommendTask) (*RecommendationData, error) {
	attrs := t.Attributes
	result, err := a.rec.Recommend(attrs)
	if err != nil {
		return nil, err
	}
	metrics.RecordRecommendations(len(result.Recommendations), result.FilteredByLength, result.BelowThreshold)

	return &RecommendationData{
		Recommendations:    result.Recommendations,
		Analysis:           a.rec.Overview(attrs.FaceShape, attrs.HairType, attrs.PersonalStyle),
		CompatibilityScore: a.rec.CompatibilityScore(),
		SeasonalTrends:     a.rec.SeasonalTrends(),
		ProfessionalAdvice: a.rec.ProfessionalAdvice(attrs.FaceShape, attrs.HairType),
		BestMatches:        a.rec.BestMatches(attrs.FaceShape, attrs.HairType, attrs.PersonalStyle, attrs.HairLength),
		TotalCandidates:    result.TotalCandidates,
		FilteredByLength:   result.FilteredByLength,
		BelowThreshold:     result.BelowThreshold,
	}, nil
}

// failure maps err onto the response contract and its metrics outcome.
func (a *Agent) failure(ctx context.Context, label string, err error) (Response, string) {
	resp := Response{AgentName: Name}
	var unsupported *UnsupportedTaskError

	var outcome string
	switch {
	case errors.Is(err, recommend.ErrAttributesRequired), errors.Is(err, recommend.ErrAnalysisFieldsRequired):
		resp.Error = err.Error()
		outcome = metrics.OutcomeInvalid
	case errors.As(err, &unsupported):
		resp.Error = unsupported.Error()
		outcome = metrics.OutcomeUnsupported
	default:
		resp.Error = "Recommendation error: " + err.Error()
		outcome = metrics.OutcomeError
	}

	logging.Ctx(ctx).Warn().
		Str("task", label).
		Str("outcome", outcome).
		Err(err).
		Msg("task failed")
	return resp, outcome
}

// requestContext attaches the agent logger and a request ID when ctx has none.
func (a *Agent) requestContext(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if logging.RequestIDFromContext(ctx) == "" {
		ctx = logging.ContextWithNewRequestID(ctx)
	}
	return logging.ContextWithLogger(ctx, a.logger)
}
