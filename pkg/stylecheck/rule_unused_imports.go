// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package stylecheck

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	importRe     = regexp.MustCompile(`^\s*import\s+(.+)$`)
	fromImportRe = regexp.MustCompile(`^\s*from\s+[A-Za-z_][\w.]*\s+import\s+(.+)$`)
	identRe      = regexp.MustCompile(`^[A-Za-z_]\w*$`)
)

// importBinding is a name an import statement introduced, with the
// 1-indexed line it came from.
type importBinding struct {
	name string
	line int
}

// checkUnusedImports finds imported names that never reappear anywhere
// else in the listing as a standalone token. The result maps import
// line numbers to their diagnostics so Check can merge them into line
// order.
//
// This is a textual heuristic, not scope analysis: names used only
// inside strings count as used, side-effect imports are reported even
// when intentional, and dynamic imports are invisible. Accepted
// trade-offs for an instant, no-parse checker.
func checkUnusedImports(lines []string) map[int][]Diagnostic {
	bindings := collectImportBindings(lines)
	if len(bindings) == 0 {
		return nil
	}

	out := make(map[int][]Diagnostic)
	for _, b := range bindings {
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(b.name) + `\b`)
		if err != nil {
			continue
		}
		used := false
		for i, line := range lines {
			if i+1 == b.line {
				continue
			}
			if re.MatchString(line) {
				used = true
				break
			}
		}
		if !used {
			out[b.line] = append(out[b.line], Diagnostic{
				Line:     b.line,
				Rule:     RuleUnusedImport,
				Message:  fmt.Sprintf("imported name %q is never used", b.name),
				Severity: SeverityStyle,
			})
		}
	}
	return out
}

// collectImportBindings extracts the names bound by "import x",
// "import x as y", "import a, b" and "from m import a, b as c" lines.
// Star imports and items that do not parse as identifiers are skipped.
func collectImportBindings(lines []string) []importBinding {
	var bindings []importBinding
	for i, line := range lines {
		code := stripComment(line)
		if m := fromImportRe.FindStringSubmatch(code); m != nil {
			for _, name := range parseImportItems(m[1], false) {
				bindings = append(bindings, importBinding{name: name, line: i + 1})
			}
			continue
		}
		if m := importRe.FindStringSubmatch(code); m != nil {
			for _, name := range parseImportItems(m[1], true) {
				bindings = append(bindings, importBinding{name: name, line: i + 1})
			}
		}
	}
	return bindings
}

// parseImportItems splits an import clause on commas and resolves each
// item to the name it binds. For dotted module paths ("import os.path")
// the bound name is the first segment, per Python semantics.
func parseImportItems(clause string, dotted bool) []string {
	clause = strings.Trim(clause, "()")
	var names []string
	for _, item := range strings.Split(clause, ",") {
		fields := strings.Fields(item)
		if len(fields) == 0 {
			continue
		}
		name := fields[0]
		if len(fields) >= 3 && fields[1] == "as" {
			name = fields[2]
		} else if dotted {
			name, _, _ = strings.Cut(name, ".")
		}
		if identRe.MatchString(name) {
			names = append(names, name)
		}
	}
	return names
}

// stripComment cuts a trailing comment so that commented-out text after
// an import clause is not parsed as part of it.
func stripComment(line string) string {
	if i := commentStart(line); i >= 0 {
		return line[:i]
	}
	return line
}
