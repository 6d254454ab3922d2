// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestGenerateIDs(t *testing.T) {
	t.Parallel()

	c1, c2 := GenerateCorrelationID(), GenerateCorrelationID()
	if len(c1) != 8 {
		t.Errorf("expected 8-character correlation ID, got %d", len(c1))
	}
	if c1 == c2 {
		t.Error("expected unique correlation IDs")
	}

	r1, r2 := GenerateRequestID(), GenerateRequestID()
	if len(r1) != 36 {
		t.Errorf("expected 36-character request ID, got %d", len(r1))
	}
	if r1 == r2 {
		t.Error("expected unique request IDs")
	}
}

func TestContextIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if id := CorrelationIDFromContext(ctx); id != "" {
		t.Errorf("expected empty correlation ID, got %s", id)
	}
	if id := RequestIDFromContext(ctx); id != "" {
		t.Errorf("expected empty request ID, got %s", id)
	}

	ctx = ContextWithCorrelationID(ctx, "corr-123")
	ctx = ContextWithRequestID(ctx, "req-456")
	if id := CorrelationIDFromContext(ctx); id != "corr-123" {
		t.Errorf("expected 'corr-123', got '%s'", id)
	}
	if id := RequestIDFromContext(ctx); id != "req-456" {
		t.Errorf("expected 'req-456', got '%s'", id)
	}

	fresh := ContextWithNewRequestID(ContextWithNewCorrelationID(context.Background()))
	if len(CorrelationIDFromContext(fresh)) != 8 {
		t.Error("expected generated correlation ID")
	}
	if len(RequestIDFromContext(fresh)) != 36 {
		t.Error("expected generated request ID")
	}
}

func TestCtx_UsesContextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), zerolog.New(&buf).With().Str("component", "agent").Logger())
	ctx = ContextWithCorrelationID(ctx, "corr-123")
	ctx = ContextWithRequestID(ctx, "req-456")

	Ctx(ctx).Info().Msg("task processed")

	output := buf.String()
	for _, want := range []string{`"component":"agent"`, `"correlation_id":"corr-123"`, `"request_id":"req-456"`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output: %s", want, output)
		}
	}
}

func TestCtxWith(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), zerolog.New(&buf))
	ctx = ContextWithCorrelationID(ctx, "corr-789")

	logger := CtxWith(ctx).Str("task", "get_trending_styles").Logger()
	logger.Info().Msg("ctxwith test")

	output := buf.String()
	if !strings.Contains(output, "corr-789") || !strings.Contains(output, "get_trending_styles") {
		t.Errorf("unexpected output: %s", output)
	}
	if strings.Contains(output, "request_id") {
		t.Errorf("expected no request_id when absent: %s", output)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	original := Logger()
	SetLogger(zerolog.New(&buf))
	defer SetLogger(original)

	logger := WithComponent("recommend")
	logger.Info().Msg("engine ready")

	if !strings.Contains(buf.String(), `"component":"recommend"`) {
		t.Errorf("expected component in output: %s", buf.String())
	}
}
