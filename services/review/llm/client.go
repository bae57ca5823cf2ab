// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package llm abstracts the chat-completion backend used for code
// review and refactoring.
package llm

import (
	"context"
	"errors"
)

// GenerationParams tunes a single generation request. Nil fields leave
// the backend default in place.
type GenerationParams struct {
	Temperature *float32 `json:"temperature"`
	MaxTokens   *int     `json:"max_tokens"`
}

// Client is the standard interface for any chat-completion backend.
type Client interface {
	// Generate sends a system persona and a user prompt and returns the
	// model's reply text.
	Generate(ctx context.Context, system, prompt string, params GenerationParams) (string, error)
}

// Sentinel errors for LLM backends.
var (
	// ErrNoAPIKey indicates no API key was configured.
	ErrNoAPIKey = errors.New("no API key configured")

	// ErrEmptyResponse indicates the backend returned no choices.
	ErrEmptyResponse = errors.New("backend returned no choices")
)

// Float32Ptr and IntPtr build GenerationParams fields inline.
func Float32Ptr(v float32) *float32 { return &v }
func IntPtr(v int) *int             { return &v }
