// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

// decodedResponse mirrors the wire form of agent.Response.
type decodedResponse struct {
	Success   bool                   `json:"success"`
	Error     string                 `json:"error"`
	Data      map[string]interface{} `json:"data"`
	AgentName string                 `json:"agent_name"`
}

func runCLI(t *testing.T, stdin string, args ...string) (int, decodedResponse, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)

	var resp decodedResponse
	if stdout.Len() > 0 {
		if err := json.Unmarshal(stdout.Bytes(), &resp); err != nil {
			t.Fatalf("stdout is not a JSON response: %v\n%s", err, stdout.String())
		}
	}
	return code, resp, stderr.String()
}

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("CATALOG_PATH", "")
	t.Setenv("METRICS_TEXTFILE", "")
	t.Setenv("LOG_LEVEL", "error")
}

func TestRun_TaskFlags(t *testing.T) {
	isolateEnv(t)

	code, resp, stderr := runCLI(t, "",
		"-task", "get_hairstyle_recommendations",
		"-payload", `{"face_shape":"oval","hair_type":"wavy"}`)

	if code != exitOK {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", code, exitOK, stderr)
	}
	if !resp.Success || resp.AgentName != "HairRecommendation" {
		t.Errorf("response = %+v", resp)
	}
	recs, ok := resp.Data["recommendations"].([]interface{})
	if !ok || len(recs) == 0 || len(recs) > 8 {
		t.Errorf("recommendations = %v", resp.Data["recommendations"])
	}
}

func TestRun_RequestFromStdin(t *testing.T) {
	isolateEnv(t)

	code, resp, _ := runCLI(t, `{"type":"get_trending_styles","payload":{"season":"winter"}}`, "-request", "-")
	if code != exitOK {
		t.Fatalf("exit code = %d, want %d", code, exitOK)
	}
	if resp.Data["season"] != "winter" {
		t.Errorf("season = %v, want winter", resp.Data["season"])
	}
}

func TestRun_RequestFile(t *testing.T) {
	isolateEnv(t)

	path := filepath.Join(t.TempDir(), "request.json")
	body := `{"type":"analyze_style_compatibility","payload":{"style_name":"pixie_cut","face_shape":"oval","hair_type":"straight"}}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write request: %v", err)
	}

	code, resp, _ := runCLI(t, "", "-request", path)
	if code != exitOK {
		t.Fatalf("exit code = %d, want %d", code, exitOK)
	}
	if _, ok := resp.Data["overall_score"]; !ok {
		t.Errorf("data missing overall_score: %v", resp.Data)
	}
}

func TestRun_UnsuccessfulResponse(t *testing.T) {
	isolateEnv(t)

	code, resp, _ := runCLI(t, "", "-task", "foo")
	if code != exitFail {
		t.Errorf("exit code = %d, want %d", code, exitFail)
	}
	if resp.Success || resp.Error != "Unsupported task: foo" {
		t.Errorf("response = %+v", resp)
	}
}

func TestRun_WritesMetricsTextfile(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "stylematch.prom")
	t.Setenv("METRICS_TEXTFILE", path)

	code, _, _ := runCLI(t, "", "-task", "get_trending_styles")
	if code != exitOK {
		t.Fatalf("exit code = %d, want %d", code, exitOK)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("metrics textfile not written: %v", err)
	}
	if !strings.Contains(string(data), "stylematch_task_requests_total") {
		t.Errorf("textfile missing task counter:\n%s", data)
	}
}

func TestRun_UsageErrors(t *testing.T) {
	isolateEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "no task", args: nil},
		{name: "both sources", args: []string{"-request", "-", "-task", "get_trending_styles"}},
		{name: "payload without task", args: []string{"-payload", "{}"}},
		{name: "stray argument", args: []string{"-task", "get_trending_styles", "extra"}},
		{name: "unknown flag", args: []string{"-port", "8080"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, "", tt.args...)
			if code != exitUsage {
				t.Errorf("exit code = %d, want %d", code, exitUsage)
			}
			if stderr == "" {
				t.Error("expected usage message on stderr")
			}
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	_, err := parseFlags([]string{"-h"}, &stderr)
	if !errors.Is(err, errUsage) {
		t.Errorf("parseFlags(-h) error = %v, want errUsage", err)
	}
	if !strings.Contains(stderr.String(), "-request") {
		t.Errorf("help output missing flags: %s", stderr.String())
	}
}

func TestRun_MissingRequestFile(t *testing.T) {
	isolateEnv(t)

	code, _, _ := runCLI(t, "", "-request", filepath.Join(t.TempDir(), "absent.json"))
	if code != exitUsage {
		t.Errorf("exit code = %d, want %d", code, exitUsage)
	}
}
