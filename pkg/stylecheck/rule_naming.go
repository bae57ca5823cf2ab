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
	"unicode"
)

var (
	defRe    = regexp.MustCompile(`^\s*def\s+([A-Za-z_]\w*)\s*\(`)
	assignRe = regexp.MustCompile(`^\s*([A-Za-z_]\w*)\s*=(?:[^=]|$)`)
	constRe  = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
)

// checkNaming flags identifiers bound by a function definition or a
// simple assignment that violate lower_case_with_underscores. ALL_CAPS
// constant names are exempt; class names are deliberately not checked
// since CamelCase is their convention.
func checkNaming(lineNo int, line string) []Diagnostic {
	if m := defRe.FindStringSubmatch(line); m != nil {
		if d, bad := namingViolation(lineNo, "function", m[1]); bad {
			return []Diagnostic{d}
		}
		return nil
	}
	if m := assignRe.FindStringSubmatch(line); m != nil {
		if d, bad := namingViolation(lineNo, "variable", m[1]); bad {
			return []Diagnostic{d}
		}
	}
	return nil
}

func namingViolation(lineNo int, kind, name string) (Diagnostic, bool) {
	if !strings.ContainsFunc(name, unicode.IsUpper) {
		return Diagnostic{}, false
	}
	if constRe.MatchString(name) {
		return Diagnostic{}, false
	}
	return Diagnostic{
		Line:     lineNo,
		Rule:     RuleNaming,
		Message:  fmt.Sprintf("%s name %q is not lower_case_with_underscores", kind, name),
		Severity: SeverityStyle,
	}, true
}
