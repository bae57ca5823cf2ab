// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package stylecheck

// checkMultiStatement flags lines that chain statements with a
// semicolon. Semicolons inside string literals or comments do not
// count; a line ending inside an unterminated literal is skipped
// entirely rather than guessed at.
func checkMultiStatement(lineNo int, line string) (Diagnostic, bool) {
	mask, ok := codeMask(line)
	if !ok {
		return Diagnostic{}, false
	}
	for i := 0; i < len(line); i++ {
		if line[i] == ';' && mask[i] {
			return Diagnostic{
				Line:     lineNo,
				Rule:     RuleMultiStatement,
				Message:  "multiple statements on one line (semicolon)",
				Severity: SeverityStyle,
			}, true
		}
	}
	return Diagnostic{}, false
}
