// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package stylecheck implements a fast lexical style checker for Python
// source listings.
//
// The checker scans raw text line by line for surface-level convention
// violations and reports them as line-addressed diagnostics. Five rule
// categories are supported, each independently toggleable:
//
//   - line-length: lines longer than 79 characters
//   - multi-statement: semicolon-separated statements on one line
//   - operator-spacing: binary operators without surrounding whitespace
//   - unused-import: imported names that never reappear in the listing
//   - naming: identifiers that violate lower_case_with_underscores
//
// # Design
//
// Every rule is a single-pass textual heuristic. There is no AST, no
// symbol table, and no semantic analysis; the checker must stay cheap
// enough to run before every remote LLM call, so it never parses. The
// known false positives/negatives of this approach (string-embedded
// identifiers, dynamic imports, aliased re-exports) are accepted by
// design. Do not upgrade these heuristics to a real parser; that would
// change the performance contract.
//
// # Thread Safety
//
// Check is a pure function. It holds no state between invocations and
// is safe to call concurrently.
package stylecheck

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// =============================================================================
// Types
// =============================================================================

// RuleTag identifies which rule category produced a diagnostic.
type RuleTag string

const (
	RuleLineLength      RuleTag = "line-length"
	RuleMultiStatement  RuleTag = "multi-statement"
	RuleOperatorSpacing RuleTag = "operator-spacing"
	RuleUnusedImport    RuleTag = "unused-import"
	RuleNaming          RuleTag = "naming"
)

// SeverityStyle is the severity carried by every diagnostic. The checker
// has no severity gradation; everything it reports is a style issue.
const SeverityStyle = "style"

// maxLineLength is the PEP-8 line limit. Fixed, not user-configurable.
const maxLineLength = 79

// Diagnostic is a single reported style violation.
//
// Line is the 1-indexed position in the checked source. Diagnostics are
// purely descriptive; they carry no remediation action.
type Diagnostic struct {
	Line     int     `json:"line"`
	Rule     RuleTag `json:"rule"`
	Message  string  `json:"message"`
	Severity string  `json:"severity"`
}

// Config selects which rule categories run. All rules are evaluated
// independently; disabling one never changes the output of another.
type Config struct {
	LineLength      bool `json:"check_line_length"`
	MultiStatement  bool `json:"check_multi_statement"`
	OperatorSpacing bool `json:"check_operator_spacing"`
	UnusedImports   bool `json:"check_unused_imports"`
	Naming          bool `json:"check_naming"`
}

// DefaultConfig returns a Config with every rule enabled.
func DefaultConfig() Config {
	return Config{
		LineLength:      true,
		MultiStatement:  true,
		OperatorSpacing: true,
		UnusedImports:   true,
		Naming:          true,
	}
}

// =============================================================================
// Check
// =============================================================================

// Check runs the enabled rules over source and returns the resulting
// diagnostics ordered by line, then by rule evaluation order within a
// line.
//
// Description:
//
//	Check is deterministic and performs no I/O. An empty source yields
//	an empty diagnostic slice, not an error. A line a rule cannot make
//	sense of (for example an unterminated string literal) is skipped
//	for that rule only; the rest of the source is still checked.
//
// Inputs:
//
//	source - The raw listing. A nil slice or non-UTF-8 bytes are the
//	         only inputs rejected with ErrInvalidInput.
//	cfg - Rule selection. See DefaultConfig.
//
// Outputs:
//
//	[]Diagnostic - Ordered diagnostics; never nil on success.
//	error - ErrInvalidInput for absent or non-text source, else nil.
func Check(source []byte, cfg Config) ([]Diagnostic, error) {
	if source == nil {
		return nil, fmt.Errorf("%w: source is nil", ErrInvalidInput)
	}
	if !utf8.Valid(source) {
		return nil, fmt.Errorf("%w: source is not valid UTF-8 text", ErrInvalidInput)
	}

	lines := splitLines(string(source))
	diags := make([]Diagnostic, 0)

	// The unused-import rule is the one whole-source rule; its findings
	// are attributed to the import line and merged into line order.
	var unused map[int][]Diagnostic
	if cfg.UnusedImports {
		unused = checkUnusedImports(lines)
	}

	for i, line := range lines {
		n := i + 1
		if cfg.LineLength {
			if d, ok := checkLineLength(n, line); ok {
				diags = append(diags, d)
			}
		}
		if cfg.MultiStatement {
			if d, ok := checkMultiStatement(n, line); ok {
				diags = append(diags, d)
			}
		}
		if cfg.OperatorSpacing {
			diags = append(diags, checkOperatorSpacing(n, line)...)
		}
		diags = append(diags, unused[n]...)
		if cfg.Naming {
			diags = append(diags, checkNaming(n, line)...)
		}
	}
	return diags, nil
}

// splitLines splits a listing into physical lines, 0-indexed here and
// reported 1-indexed. A trailing newline does not produce an extra
// empty line, matching how editors count lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
