// File: stringx.go
// Title: String Utility Functions
// Description: Unicode-aware helpers used when rendering tokens, diagnostics
//              and AST dumps.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package stringx

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank reports whether s is empty or contains only whitespace
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Truncate shortens s to at most maxLen runes, ending in ellipsis when cut.
// When the ellipsis itself does not fit, s is cut without it.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	runes := []rune(s)
	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-ellipsisLen]) + ellipsis
}

// PadRight pads s with pad up to width runes
func PadRight(s string, width int, pad rune) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(string(pad), width-n)
}

// Indent prefixes every non-empty line of s with prefix
func Indent(s, prefix string) string {
	if s == "" || prefix == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// Printable replaces control characters with their escaped form so a
// literal can be shown on one line
func Printable(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if unicode.IsControl(r) {
				fmt.Fprintf(&b, "\\x%02X", r)
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}
