// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"

	"github.com/codementor-ai/codementor/pkg/logging"
)

// OpenAIClient implements Client against the OpenAI chat API.
type OpenAIClient struct {
	client *openai.Client
	model  string
	logger *logging.Logger
}

// NewOpenAIClient creates an OpenAI-backed client.
//
// Description:
//
//	An empty apiKey falls back to the OPENAI_API_KEY environment
//	variable; if neither is set the constructor fails with ErrNoAPIKey
//	rather than deferring the failure to the first request. An empty
//	model falls back to OPENAI_MODEL, then to gpt-4o-mini.
//
// Inputs:
//
//	apiKey - API key, or "" to read the environment.
//	model - Chat model name, or "" to read the environment.
//	logger - Structured logger. Must not be nil.
//
// Outputs:
//
//	*OpenAIClient - Ready-to-use client.
//	error - ErrNoAPIKey when no key is available.
func NewOpenAIClient(apiKey, model string, logger *logging.Logger) (*OpenAIClient, error) {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if model == "" {
		model = os.Getenv("OPENAI_MODEL")
	}
	if model == "" {
		model = "gpt-4o-mini"
		logger.Warn("no model configured, defaulting", "model", model)
	}
	logger.Info("initializing OpenAI client", "model", model)
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
		logger: logger,
	}, nil
}

// Generate implements the Client interface.
func (o *OpenAIClient) Generate(ctx context.Context, system, prompt string, params GenerationParams) (string, error) {
	o.logger.Debug("generating via OpenAI", "model", o.model)
	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
	if params.Temperature != nil {
		req.Temperature = *params.Temperature
	}
	if params.MaxTokens != nil {
		req.MaxCompletionTokens = *params.MaxTokens
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		o.logger.Error("OpenAI API call failed", "error", err)
		return "", fmt.Errorf("OpenAI API call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		o.logger.Warn("OpenAI returned no choices")
		return "", ErrEmptyResponse
	}
	o.logger.Debug("received response", "finish_reason", resp.Choices[0].FinishReason)
	return resp.Choices[0].Message.Content, nil
}
