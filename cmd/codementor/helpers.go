// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/codementor-ai/codementor/pkg/config"
	"github.com/codementor-ai/codementor/pkg/logging"
	"github.com/codementor-ai/codementor/services/review"
	"github.com/codementor-ai/codementor/services/review/history"
	"github.com/codementor-ai/codementor/services/review/llm"
)

// loadConfig resolves the --config flag or the default path.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

// newLogger builds the process logger from config. CLI runs log
// quietly to the file only; the terminal belongs to command output.
func newLogger(cfg *config.Config, quiet bool) *logging.Logger {
	return logging.New(logging.Config{
		Level:   logging.ParseLevel(cfg.Log.Level),
		LogDir:  cfg.Log.Dir,
		Service: "codementor",
		Quiet:   quiet,
	})
}

// buildService wires the review service from config.
//
// Description:
//
//	The history store always opens. The LLM client is optional: when no
//	API key is configured the service comes up degraded, with review
//	and refactor unavailable but check and history still working. A
//	missing key is only an error when needLLM is set.
//
// Outputs:
//
//	*review.Service - The wired service.
//	func() - Cleanup closing the history store.
//	error - Config or store failure, or missing key when needLLM.
func buildService(cfg *config.Config, logger *logging.Logger, needLLM bool) (*review.Service, func(), error) {
	store, err := history.Open(history.Config{
		Path:       filepath.Join(cfg.DataDir, "history"),
		SyncWrites: true,
		Logger:     logger.Slog(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("opening history store: %w", err)
	}
	cleanup := func() { _ = store.Close() }

	client, err := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, logger)
	if err != nil {
		if needLLM || !errors.Is(err, llm.ErrNoAPIKey) {
			cleanup()
			return nil, nil, err
		}
		logger.Warn("no OpenAI API key configured, review and refactor disabled")
		client = nil
	}

	svc := review.NewService(review.ServiceConfig{
		LLM:     clientOrNil(client),
		History: store,
		Logger:  logger,
	})
	return svc, cleanup, nil
}

// clientOrNil keeps a nil *OpenAIClient from becoming a non-nil
// llm.Client interface value.
func clientOrNil(c *llm.OpenAIClient) llm.Client {
	if c == nil {
		return nil
	}
	return c
}

// readSource reads a listing from a path, or stdin when path is "-".
func readSource(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
