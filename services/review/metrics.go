// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package review

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/codementor-ai/codementor/pkg/stylecheck"
)

var (
	checksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "codementor_checks_total",
		Help: "Style checks executed.",
	})

	diagnosticsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "codementor_diagnostics_total",
		Help: "Diagnostics emitted, by rule category.",
	}, []string{"rule"})

	llmRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "codementor_llm_requests_total",
		Help: "LLM requests, by operation and outcome.",
	}, []string{"operation", "outcome"})

	scoreFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "codementor_score_fallbacks_total",
		Help: "Reviews where the structured score could not be extracted.",
	})
)

func observeDiagnostics(diags []stylecheck.Diagnostic) {
	checksTotal.Inc()
	for _, d := range diags {
		diagnosticsTotal.WithLabelValues(string(d.Rule)).Inc()
	}
}

func observeLLM(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	llmRequestsTotal.WithLabelValues(operation, outcome).Inc()
}
