// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	configPath string

	// check flags
	noLineLength      bool
	noMultiStatement  bool
	noOperatorSpacing bool
	noUnusedImports   bool
	noNaming          bool
	jsonOutput        bool

	// review / refactor flags
	outputPath  string
	interactive bool

	// history flags
	historyLimit int

	// serve flags
	servePort  int
	serveDebug bool

	rootCmd = &cobra.Command{
		Use:   "codementor",
		Short: "A mentor for beginner Python code: style checks, reviews and refactors",
		Long: `CodeMentor checks Python code for common style problems, and can
ask an LLM for a full beginner-friendly review with a quality score,
or a refactored version of the code.`,
		SilenceUsage:  true,
		SilenceErrors: true, // main prints the error once
	}

	checkCmd = &cobra.Command{
		Use:   "check [file...]",
		Short: "Run the local style checker over one or more files ('-' for stdin)",
		Args:  cobra.MinimumNArgs(1),
		Run:   runCheck, // Defined in cmd_check.go
	}

	reviewCmd = &cobra.Command{
		Use:   "review [file]",
		Short: "Style check plus an LLM review with a quality score",
		Args:  cobra.ExactArgs(1),
		RunE:  runReview, // Defined in cmd_review.go
	}

	refactorCmd = &cobra.Command{
		Use:   "refactor [file]",
		Short: "Ask the LLM for a cleaned-up version of the file",
		Args:  cobra.ExactArgs(1),
		RunE:  runRefactor, // Defined in cmd_review.go
	}

	historyCmd = &cobra.Command{
		Use:   "history [id]",
		Short: "Show recent check/review/refactor runs",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHistory, // Defined in cmd_history.go
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the CodeMentor HTTP API server",
		RunE:  runServe, // Defined in cmd_serve.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default ~/.codementor/config.yaml)")

	checkCmd.Flags().BoolVar(&noLineLength, "no-line-length", false, "Disable the line length rule")
	checkCmd.Flags().BoolVar(&noMultiStatement, "no-multi-statement", false, "Disable the multi-statement rule")
	checkCmd.Flags().BoolVar(&noOperatorSpacing, "no-operator-spacing", false, "Disable the operator spacing rule")
	checkCmd.Flags().BoolVar(&noUnusedImports, "no-unused-imports", false, "Disable the unused import rule")
	checkCmd.Flags().BoolVar(&noNaming, "no-naming", false, "Disable the naming rule")
	checkCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit diagnostics as JSON")

	reviewCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the full result as JSON")

	refactorCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"Write the refactored code to this file instead of stdout")
	refactorCmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"Review the refactor in an interactive before/after view")

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum entries to show")

	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug mode and request logging")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(refactorCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}
