// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package review orchestrates the local style checker and the remote
// LLM reviewer behind one service, exposed over both the CLI and the
// HTTP API.
//
// The style checker always runs first and always locally; the LLM is
// only consulted for review and refactor operations. When the remote
// half fails, locally produced diagnostics are still returned — partial
// results are never dropped.
package review

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/codementor-ai/codementor/pkg/logging"
	"github.com/codementor-ai/codementor/pkg/stylecheck"
	"github.com/codementor-ai/codementor/services/review/history"
	"github.com/codementor-ai/codementor/services/review/llm"
)

// ServiceConfig wires the service's collaborators.
type ServiceConfig struct {
	// LLM is the chat backend. Nil disables review and refactor; the
	// local checker keeps working.
	LLM llm.Client

	// History persists run summaries. Nil disables persistence.
	History *history.Store

	// Logger defaults to logging.Default when nil.
	Logger *logging.Logger
}

// Service coordinates style checking, LLM review/refactor, scoring and
// history. Safe for concurrent use; it holds no per-request state.
type Service struct {
	llm     llm.Client
	history *history.Store
	logger  *logging.Logger
}

// NewService creates a Service from the given configuration.
func NewService(cfg ServiceConfig) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		llm:     cfg.LLM,
		history: cfg.History,
		logger:  logger,
	}
}

// ReviewResult is the outcome of a Review call. Diagnostics are always
// populated, even when the LLM call failed.
type ReviewResult struct {
	ID          string
	Diagnostics []stylecheck.Diagnostic
	Review      string
	Score       ScoreResult
}

// RefactorResult is the outcome of a Refactor call.
type RefactorResult struct {
	ID         string
	Refactored string
}

// Check runs the local style checker.
//
// Outputs:
//
//	[]stylecheck.Diagnostic - Ordered diagnostics, possibly empty.
//	error - stylecheck.ErrInvalidInput for absent/non-text source.
func (s *Service) Check(ctx context.Context, code []byte, cfg stylecheck.Config) ([]stylecheck.Diagnostic, error) {
	diags, err := stylecheck.Check(code, cfg)
	if err != nil {
		return nil, err
	}
	observeDiagnostics(diags)
	s.record(ctx, history.Entry{
		ID:          uuid.NewString(),
		Kind:        history.KindCheck,
		CodeBytes:   len(code),
		Diagnostics: len(diags),
	})
	return diags, nil
}

// Review runs the style checker and then asks the LLM for a full
// review with a quality score.
//
// Description:
//
//	On LLM failure the returned result still carries the local
//	diagnostics alongside a non-nil error, so callers can render what
//	succeeded. The model's self-reported score is extracted as a typed
//	result; extraction failure falls back to the keyword score with
//	the reason recorded, never silently.
func (s *Service) Review(ctx context.Context, code string, cfg stylecheck.Config) (*ReviewResult, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrEmptyCode
	}

	diags, err := stylecheck.Check([]byte(code), cfg)
	if err != nil {
		return nil, err
	}
	observeDiagnostics(diags)

	result := &ReviewResult{
		ID:          uuid.NewString(),
		Diagnostics: diags,
	}
	if s.llm == nil {
		return result, ErrLLMUnavailable
	}

	reply, err := s.llm.Generate(ctx, reviewSystemPrompt, reviewPrompt(code), llm.GenerationParams{
		Temperature: llm.Float32Ptr(0.7),
		MaxTokens:   llm.IntPtr(1500),
	})
	observeLLM("review", err)
	if err != nil {
		return result, fmt.Errorf("%w: %v", ErrLLMRequest, err)
	}

	score := scoreReview(reply)
	if score.Source == ScoreSourceKeyword {
		scoreFallbacksTotal.Inc()
		s.logger.Warn("structured score extraction failed, using keyword fallback",
			"reason", score.Reason)
	}
	result.Review = stripScoreLine(reply)
	result.Score = score

	s.record(ctx, history.Entry{
		ID:          result.ID,
		Kind:        history.KindReview,
		CodeBytes:   len(code),
		Diagnostics: len(diags),
		Score:       score.Value,
		ScoreSource: string(score.Source),
		Label:       score.Label,
	})
	return result, nil
}

// Refactor asks the LLM for a cleaned-up version of the listing.
// Markdown code fences around the reply are stripped before return.
func (s *Service) Refactor(ctx context.Context, code string) (*RefactorResult, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrEmptyCode
	}
	if s.llm == nil {
		return nil, ErrLLMUnavailable
	}

	reply, err := s.llm.Generate(ctx, refactorSystemPrompt, refactorPrompt(code), llm.GenerationParams{
		Temperature: llm.Float32Ptr(0.5),
		MaxTokens:   llm.IntPtr(2000),
	})
	observeLLM("refactor", err)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLLMRequest, err)
	}

	result := &RefactorResult{
		ID:         uuid.NewString(),
		Refactored: stripCodeFences(reply),
	}
	s.record(ctx, history.Entry{
		ID:        result.ID,
		Kind:      history.KindRefactor,
		CodeBytes: len(code),
	})
	return result, nil
}

// History lists recent run summaries, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]history.Entry, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.List(ctx, limit)
}

// HistoryEntry fetches one run summary by ID.
func (s *Service) HistoryEntry(ctx context.Context, id string) (*history.Entry, error) {
	if s.history == nil {
		return nil, history.ErrNotFound
	}
	return s.history.Get(ctx, id)
}

// Ready reports whether the LLM backend is configured.
func (s *Service) Ready() bool {
	return s.llm != nil
}

// record appends a history entry, best effort. History failures are
// logged, never propagated into the request path.
func (s *Service) record(ctx context.Context, e history.Entry) {
	if s.history == nil {
		return
	}
	if err := s.history.Append(ctx, e); err != nil {
		s.logger.Warn("recording history entry failed", "id", e.ID, "error", err)
	}
}

// stripCodeFences removes a wrapping markdown code block from a model
// reply that ignored the plain-code instruction.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```python")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
