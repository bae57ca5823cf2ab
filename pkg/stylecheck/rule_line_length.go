// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package stylecheck

import (
	"fmt"
	"unicode/utf8"
)

// checkLineLength flags lines longer than the PEP-8 limit. Length is
// counted in runes so multi-byte characters are not over-counted.
func checkLineLength(lineNo int, line string) (Diagnostic, bool) {
	n := utf8.RuneCountInString(line)
	if n <= maxLineLength {
		return Diagnostic{}, false
	}
	return Diagnostic{
		Line:     lineNo,
		Rule:     RuleLineLength,
		Message:  fmt.Sprintf("line is %d characters long, limit is %d", n, maxLineLength),
		Severity: SeverityStyle,
	}, true
}
