// StyleMatch - Rule-Based Hairstyle Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylematch

/*
Package agent dispatches StyleMatch tasks to the recommendation engine.

A task arrives as an envelope naming its type and carrying a JSON payload:

	{"type": "get_hairstyle_recommendations",
	 "payload": {"face_shape": "oval", "hair_type": "wavy"}}

The envelope is decoded once into one of three typed tasks (RecommendTask,
AnalyzeTask, TrendingTask). Agent.Process switches over the closed Task set
and always answers with a Response; failures never escape as Go errors:

  - validation failures carry the engine's message verbatim
  - unknown task types answer "Unsupported task: <type>"
  - anything else, recovered panics included, answers
    "Recommendation error: <detail>"

Every processed task is logged with its request ID and counted in the
stylematch_task_* Prometheus metrics.
*/
package agent
