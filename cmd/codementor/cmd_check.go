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
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/codementor-ai/codementor/pkg/stylecheck"
)

// fileResult pairs a checked file with its diagnostics.
type fileResult struct {
	File        string                  `json:"file"`
	Diagnostics []stylecheck.Diagnostic `json:"diagnostics"`
}

// checkConfigFromFlags builds the checker configuration from the
// --no-* flags. Everything is on unless turned off.
func checkConfigFromFlags() stylecheck.Config {
	cfg := stylecheck.DefaultConfig()
	cfg.LineLength = !noLineLength
	cfg.MultiStatement = !noMultiStatement
	cfg.OperatorSpacing = !noOperatorSpacing
	cfg.UnusedImports = !noUnusedImports
	cfg.Naming = !noNaming
	return cfg
}

// runCheck executes the check command. Files are checked concurrently;
// output is grouped per file in argument order.
//
// Exit codes: 0 clean, 1 diagnostics found, 2 read or input error.
func runCheck(cmd *cobra.Command, args []string) {
	cfg := checkConfigFromFlags()

	results := make([]fileResult, len(args))
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(8)

	for i, path := range args {
		g.Go(func() error {
			source, err := readSource(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			diags, err := stylecheck.Check(source, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if diags == nil {
				diags = []stylecheck.Diagnostic{}
			}
			results[i] = fileResult{File: path, Diagnostics: diags}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitError)
	}

	total := 0
	for _, r := range results {
		total += len(r.Diagnostics)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(exitError)
		}
	} else {
		printCheckResults(results, total)
	}

	if total > 0 {
		os.Exit(exitDiagnostics)
	}
}

func printCheckResults(results []fileResult, total int) {
	for _, r := range results {
		for _, d := range r.Diagnostics {
			fmt.Printf("%s:%d: %s %s\n",
				r.File, d.Line, ruleBadge(d.Rule), d.Message)
		}
	}

	files := "files"
	if len(results) == 1 {
		files = "file"
	}
	if total == 0 {
		fmt.Println(okStyle.Render(fmt.Sprintf("✓ %d %s checked, no style issues", len(results), files)))
		return
	}

	byRule := map[string]int{}
	for _, r := range results {
		for _, d := range r.Diagnostics {
			byRule[string(d.Rule)]++
		}
	}
	rules := make([]string, 0, len(byRule))
	for rule := range byRule {
		rules = append(rules, rule)
	}
	sort.Strings(rules)

	fmt.Printf("\n%d issue(s) in %d %s:", total, len(results), files)
	for _, rule := range rules {
		fmt.Printf(" %s=%d", rule, byRule[rule])
	}
	fmt.Println()
}
