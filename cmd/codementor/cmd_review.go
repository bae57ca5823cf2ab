// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/codementor-ai/codementor/pkg/stylecheck"
	"github.com/codementor-ai/codementor/services/review"
	"github.com/codementor-ai/codementor/services/review/tui"
)

// runReview executes the review command: local style check plus an LLM
// review with a quality score.
func runReview(cmd *cobra.Command, args []string) error {
	source, err := readSource(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg, true)
	defer logger.Close()

	svc, cleanup, err := buildService(cfg, logger, true)
	if err != nil {
		return err
	}
	defer cleanup()

	var result *review.ReviewResult
	err = withSpinner("Reviewing "+args[0], func() error {
		var reviewErr error
		result, reviewErr = svc.Review(context.Background(), string(source), stylecheck.DefaultConfig())
		return reviewErr
	})
	if err != nil {
		// The local half may have succeeded; show what we have.
		if result != nil && len(result.Diagnostics) > 0 {
			fmt.Println(headingStyle.Render("Style check"))
			printDiagnostics(result.Diagnostics)
		}
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"id":          result.ID,
			"diagnostics": result.Diagnostics,
			"review":      result.Review,
			"score":       result.Score,
		})
	}

	fmt.Println(headingStyle.Render("Style check"))
	printDiagnostics(result.Diagnostics)
	fmt.Println()
	fmt.Println(headingStyle.Render("Review"))
	fmt.Println(result.Review)
	fmt.Println()
	fmt.Println(renderScoreCard(result.Score))
	return nil
}

// runRefactor executes the refactor command.
func runRefactor(cmd *cobra.Command, args []string) error {
	source, err := readSource(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg, true)
	defer logger.Close()

	svc, cleanup, err := buildService(cfg, logger, true)
	if err != nil {
		return err
	}
	defer cleanup()

	var result *review.RefactorResult
	err = withSpinner("Refactoring "+args[0], func() error {
		var refErr error
		result, refErr = svc.Refactor(context.Background(), string(source))
		return refErr
	})
	if err != nil {
		return err
	}

	if interactive {
		accepted, err := runRefactorTUI(string(source), result.Refactored)
		if err != nil {
			return err
		}
		if !accepted {
			fmt.Println("Refactor discarded.")
			return nil
		}
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(result.Refactored+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outputPath, err)
		}
		fmt.Println(okStyle.Render("✓ wrote " + outputPath))
		return nil
	}

	fmt.Println(result.Refactored)
	return nil
}

// runRefactorTUI shows the before/after view and reports whether the
// user accepted the refactor.
func runRefactorTUI(original, refactored string) (bool, error) {
	diags, err := stylecheck.Check([]byte(original), stylecheck.DefaultConfig())
	if err != nil && !errors.Is(err, stylecheck.ErrInvalidInput) {
		return false, err
	}

	model := tui.NewRefactorModel(original, refactored, diags)
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("running refactor view: %w", err)
	}
	if m, ok := final.(tui.RefactorModel); ok {
		return m.Accepted(), nil
	}
	return false, nil
}
