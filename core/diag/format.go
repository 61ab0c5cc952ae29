/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Logismos Authors
*/

package diag

import (
	"errors"
	"strings"
)

// Format renders err for a terminal. When err is an *Error and the source
// it points into is available, the output includes the offending line with
// a caret under the error column and the help text, if any:
//
//	1:8: parse error: expected ')' after expression
//	  (1 + 2
//	         ^
//
// Any other error renders as its Error() string.
func Format(err error, source string) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	var b strings.Builder
	b.WriteString(e.Error())
	if excerpt, ok := sourceLine(source, e.Position.Line); ok {
		b.WriteString("\n  ")
		b.WriteString(excerpt)
		b.WriteString("\n  ")
		b.WriteString(caret(excerpt, e.Position.Column))
	}
	if e.Help != "" {
		b.WriteString("\nhelp: ")
		b.WriteString(e.Help)
	}
	return b.String()
}

// sourceLine returns the 1-based line of source, without its newline.
func sourceLine(source string, line int) (string, bool) {
	if line < 1 {
		return "", false
	}
	rest := source
	for i := 1; i < line; i++ {
		nl := strings.IndexByte(rest, '\n')
		if nl < 0 {
			return "", false
		}
		rest = rest[nl+1:]
	}
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}
	return strings.TrimSuffix(rest, "\r"), true
}

// caret builds the marker line for a 1-based column. Tabs in the excerpt
// are copied so the caret lines up under tabbed source.
func caret(excerpt string, column int) string {
	var b strings.Builder
	for i := 0; i < column-1; i++ {
		if i < len(excerpt) && excerpt[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('^')
	return b.String()
}
