// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codementor-ai/codementor/services/review/history"
)

// runHistory lists recent runs, or shows one entry when an ID is
// given.
func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg, true)
	defer logger.Close()

	svc, cleanup, err := buildService(cfg, logger, false)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := context.Background()

	if len(args) == 1 {
		entry, err := svc.HistoryEntry(ctx, args[0])
		if err != nil {
			return err
		}
		printEntry(entry)
		return nil
	}

	entries, err := svc.History(ctx, historyLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("%-36s  %-20s  %-8s  %5s  %s\n",
		"ID", "WHEN", "KIND", "DIAGS", "SCORE")
	for _, e := range entries {
		score := "-"
		if e.Kind == history.KindReview {
			score = fmt.Sprintf("%d (%s)", e.Score, e.Label)
		}
		fmt.Printf("%-36s  %-20s  %-8s  %5d  %s\n",
			e.ID,
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			e.Kind,
			e.Diagnostics,
			score)
	}
	return nil
}

func printEntry(e *history.Entry) {
	fmt.Println(headingStyle.Render("Run " + e.ID))
	fmt.Println("  when:        ", e.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Println("  kind:        ", e.Kind)
	fmt.Println("  code bytes:  ", e.CodeBytes)
	fmt.Println("  diagnostics: ", e.Diagnostics)
	if e.Kind == history.KindReview {
		fmt.Printf("  score:        %d (%s, %s)\n", e.Score, e.Label, e.ScoreSource)
	}
}
