// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package stylecheck

import (
	"fmt"
	"strings"
)

// opToken is an operator the scanner recognizes. Tokens are matched
// longest-first so that a multi-character operator consumes its
// characters before any shorter operator can see them: "==" never also
// triggers the bare "=" check, ">=" is never flagged as ">" plus "=".
//
// Unflagged tokens exist only to absorb characters; "**" and "->" are
// conventionally written without or with their own spacing rules and
// are left alone.
type opToken struct {
	text    string
	flagged bool
}

var opTokens = []opToken{
	{"**", false},
	{"//", false},
	{"->", false},
	{"==", true},
	{"!=", true},
	{"<=", true},
	{">=", true},
	{"+=", true},
	{"-=", true},
	{"*=", false},
	{"/=", false},
	{"=", true},
	{"+", true},
	{"-", true},
}

// checkOperatorSpacing flags binary operators that are not surrounded
// by whitespace on both sides. Occurrences inside string literals and
// comments are ignored, and a line with an unterminated literal is
// skipped for this rule.
func checkOperatorSpacing(lineNo int, line string) []Diagnostic {
	mask, ok := codeMask(line)
	if !ok {
		return nil
	}

	var out []Diagnostic
	for i := 0; i < len(line); {
		if !mask[i] {
			i++
			continue
		}
		tok, matched := matchOperator(line, mask, i)
		if !matched {
			i++
			continue
		}
		end := i + len(tok.text)
		if tok.flagged && !isUnarySign(tok.text, line, i) {
			beforeOK := i == 0 || isSpaceByte(line[i-1])
			afterOK := end == len(line) || isSpaceByte(line[end])
			if !beforeOK || !afterOK {
				out = append(out, Diagnostic{
					Line:     lineNo,
					Rule:     RuleOperatorSpacing,
					Message:  fmt.Sprintf("missing whitespace around operator %q", tok.text),
					Severity: SeverityStyle,
				})
			}
		}
		i = end
	}
	return out
}

// matchOperator tries each recognized operator at position i,
// longest-first. Every byte of the operator must lie in code.
func matchOperator(line string, mask []bool, i int) (opToken, bool) {
	for _, tok := range opTokens {
		end := i + len(tok.text)
		if end > len(line) || line[i:end] != tok.text {
			continue
		}
		inCode := true
		for j := i; j < end; j++ {
			if !mask[j] {
				inCode = false
				break
			}
		}
		if inCode {
			return tok, true
		}
	}
	return opToken{}, false
}

// isUnarySign reports whether a "+" or "-" at position i reads as a
// sign rather than a binary operator: it follows an opening bracket,
// another operator, a comma, a colon, or a keyword such as "return".
// Purely textual, like the rest of the checker.
func isUnarySign(op, line string, i int) bool {
	if op != "+" && op != "-" {
		return false
	}
	j := i - 1
	for j >= 0 && isSpaceByte(line[j]) {
		j--
	}
	if j < 0 {
		return true
	}
	switch line[j] {
	case '=', '(', '[', '{', ',', ':', '<', '>', '+', '-', '*', '/', '%', '~':
		return true
	}
	k := j
	for k >= 0 && isWordByte(line[k]) {
		k--
	}
	switch line[k+1 : j+1] {
	case "return", "yield", "and", "or", "not", "if", "else", "elif",
		"while", "in", "is", "lambda", "assert":
		return true
	}
	return false
}

func isSpaceByte(c byte) bool { return c == ' ' || c == '\t' }

func isWordByte(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// operatorSet lists the flagged operators, longest first, for display
// by callers (the CLI help text uses it).
func operatorSet() []string {
	var ops []string
	for _, tok := range opTokens {
		if tok.flagged {
			ops = append(ops, tok.text)
		}
	}
	return ops
}

// OperatorList returns the flagged operator set as a comma-separated
// string.
func OperatorList() string {
	return strings.Join(operatorSet(), ", ")
}
