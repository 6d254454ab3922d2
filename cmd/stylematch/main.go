// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

// Package main is the StyleMatch command line entry point.
//
// stylematch answers one task per invocation. The task is either a JSON
// envelope read from a file (or stdin with "-"):
//
//	echo '{"type":"get_hairstyle_recommendations","payload":{"face_shape":"oval","hair_type":"wavy"}}' \
//	  | stylematch -request -
//
// or given as a task type and payload:
//
//	stylematch -task get_trending_styles -payload '{"season":"summer"}'
//
// The JSON response is written to stdout. The exit status is 0 when the
// response reports success, 1 when it does not and 2 for usage errors.
//
// # Configuration
//
// Configuration is loaded via koanf with layered sources (highest priority wins):
//   - Environment variables (LOG_LEVEL, CATALOG_PATH, RECOMMEND_*, METRICS_TEXTFILE)
//   - Config file (-config, CONFIG_PATH, config.yaml, /etc/stylematch/config.yaml)
//   - Built-in defaults
//
// When metrics.textfile_path is set, the task counters are written there in
// Prometheus text format after the task completes, for collection by the
// node_exporter textfile collector.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/stylematch/internal/agent"
	"github.com/tomtom215/stylematch/internal/config"
	"github.com/tomtom215/stylematch/internal/logging"
	"github.com/tomtom215/stylematch/internal/metrics"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

// errUsage marks invocation mistakes that should print usage.
var errUsage = errors.New("usage error")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// options are the parsed command line flags.
type options struct {
	configPath string
	request    string
	task       string
	payload    string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("stylematch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "path to config file (default: CONFIG_PATH or config.yaml)")
	fs.StringVar(&opts.request, "request", "", `task envelope file, or "-" for stdin`)
	fs.StringVar(&opts.task, "task", "", "task type, e.g. get_hairstyle_recommendations")
	fs.StringVar(&opts.payload, "payload", "", "task payload as JSON (with -task)")

	if err := fs.Parse(args); err != nil {
		return options{}, fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}

	switch {
	case opts.request != "" && opts.task != "":
		return options{}, fmt.Errorf("%w: -request and -task are mutually exclusive", errUsage)
	case opts.request == "" && opts.task == "":
		return options{}, fmt.Errorf("%w: one of -request or -task is required", errUsage)
	case opts.payload != "" && opts.task == "":
		return options{}, fmt.Errorf("%w: -payload requires -task", errUsage)
	}
	return opts, nil
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stderr, "stylematch: %v\n", err)
		}
		return exitUsage
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "stylematch: %v\n", err)
		return exitFail
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    stderr,
	})

	a, err := initAgent(cfg, logging.Logger())
	if err != nil {
		logging.Error().Err(err).Msg("Failed to initialize recommendation agent")
		return exitFail
	}

	env, err := readEnvelope(opts, stdin)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to read task")
		return exitUsage
	}

	ctx := logging.ContextWithNewCorrelationID(context.Background())
	resp := a.Handle(ctx, env)

	if err := writeResponse(stdout, resp); err != nil {
		logging.Error().Err(err).Msg("Failed to write response")
		return exitFail
	}

	if path := cfg.Metrics.TextfilePath; path != "" {
		if err := metrics.WriteTextfile(path); err != nil {
			logging.Warn().Err(err).Str("path", path).Msg("Failed to write metrics textfile")
		}
	}

	if !resp.Success {
		return exitFail
	}
	return exitOK
}

// readEnvelope builds the task envelope from -request or -task/-payload.
func readEnvelope(opts options, stdin io.Reader) (agent.Envelope, error) {
	if opts.task != "" {
		return agent.Envelope{Type: opts.task, Payload: []byte(opts.payload)}, nil
	}

	var (
		data []byte
		err  error
	)
	if opts.request == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(opts.request)
	}
	if err != nil {
		return agent.Envelope{}, fmt.Errorf("failed to read request %s: %w", opts.request, err)
	}
	return agent.ParseEnvelope(data)
}

func writeResponse(w io.Writer, resp agent.Response) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	return nil
}
