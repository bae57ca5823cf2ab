// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package stylecheck

// codeMask classifies each byte of a line as executable code or not.
//
// Description:
//
//	mask[i] is true when byte i sits outside string literals and
//	comments. Quote delimiters themselves count as part of the literal.
//	Single and double quotes are tracked per line with backslash
//	escapes; multi-line strings are out of scope for this checker.
//
// Outputs:
//
//	mask - Per-byte classification, len(mask) == len(line).
//	ok - False when the line ends inside an unterminated string
//	     literal. Callers must then skip the line for their rule.
//
// All characters the rules care about (quotes, '#', ';', operators)
// are ASCII, so a byte-level mask is sufficient.
func codeMask(line string) (mask []bool, ok bool) {
	mask = make([]bool, len(line))
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		if quote != 0 {
			if c == '\\' && i+1 < len(line) {
				i++ // skip the escaped byte
				continue
			}
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '#':
			// Rest of the line is a comment.
			return mask, true
		default:
			mask[i] = true
		}
	}
	return mask, quote == 0
}

// commentStart returns the byte index where a trailing comment begins,
// or -1 when the line has none. A '#' inside a string literal does not
// open a comment.
func commentStart(line string) int {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		if quote != 0 {
			if c == '\\' && i+1 < len(line) {
				i++
				continue
			}
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '#':
			return i
		}
	}
	return -1
}
