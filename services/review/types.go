// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package review

import (
	"github.com/codementor-ai/codementor/pkg/stylecheck"
)

// RuleToggles is the wire form of the checker configuration. Omitted
// fields default to enabled, so callers only spell out what they turn
// off.
type RuleToggles struct {
	LineLength      *bool `json:"check_line_length"`
	MultiStatement  *bool `json:"check_multi_statement"`
	OperatorSpacing *bool `json:"check_operator_spacing"`
	UnusedImports   *bool `json:"check_unused_imports"`
	Naming          *bool `json:"check_naming"`
}

// Resolve converts the wire toggles to a checker Config.
func (t *RuleToggles) Resolve() stylecheck.Config {
	cfg := stylecheck.DefaultConfig()
	if t == nil {
		return cfg
	}
	if t.LineLength != nil {
		cfg.LineLength = *t.LineLength
	}
	if t.MultiStatement != nil {
		cfg.MultiStatement = *t.MultiStatement
	}
	if t.OperatorSpacing != nil {
		cfg.OperatorSpacing = *t.OperatorSpacing
	}
	if t.UnusedImports != nil {
		cfg.UnusedImports = *t.UnusedImports
	}
	if t.Naming != nil {
		cfg.Naming = *t.Naming
	}
	return cfg
}

// CheckRequest is the request body for POST /v1/review/check.
type CheckRequest struct {
	// Code is the source listing to check. Required.
	Code string `json:"code" binding:"required"`

	// Config selects rule categories. Omitted rules stay enabled.
	Config *RuleToggles `json:"config"`
}

// CheckResponse is the response for POST /v1/review/check.
type CheckResponse struct {
	// Diagnostics in line order. Present even when empty.
	Diagnostics []stylecheck.Diagnostic `json:"diagnostics"`
}

// ReviewRequest is the request body for POST /v1/review/review.
type ReviewRequest struct {
	Code   string       `json:"code" binding:"required"`
	Config *RuleToggles `json:"config"`
}

// ReviewResponse is the response for POST /v1/review/review.
type ReviewResponse struct {
	// ID identifies the stored history entry for this run.
	ID string `json:"id"`

	// Diagnostics from the local style checker, always present.
	Diagnostics []stylecheck.Diagnostic `json:"diagnostics"`

	// Review is the model's analysis text.
	Review string `json:"review"`

	// Score is the typed quality score with its provenance.
	Score ScoreResult `json:"score"`
}

// RefactorRequest is the request body for POST /v1/review/refactor.
type RefactorRequest struct {
	Code string `json:"code" binding:"required"`
}

// RefactorResponse is the response for POST /v1/review/refactor.
type RefactorResponse struct {
	ID         string `json:"id"`
	Refactored string `json:"refactored"`
}

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`

	// Diagnostics carries any locally produced findings when the
	// remote half of a request failed; partial results are never
	// dropped.
	Diagnostics []stylecheck.Diagnostic `json:"diagnostics,omitempty"`
}
