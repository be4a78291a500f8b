package cpe

import "strings"

// escapeDotHyphen lifts text from an encoding that allows a bare dot or
// hyphen (formatted string, 1.1 URI, and the un-percent-encoded remainder of
// a 2.2 URI field) into Value's backslash-escaped standard form, which
// treats both as reserved. Every other character, including an
// already-escaped sequence, passes through unchanged.
func escapeDotHyphen(s string) string {
	var b strings.Builder
	esc := false
	for _, r := range s {
		switch {
		case esc:
			b.WriteByte('\\')
			b.WriteRune(r)
			esc = false
		case r == '\\':
			esc = true
		case r == '.' || r == '-':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	if esc {
		b.WriteByte('\\')
	}
	return b.String()
}

// splitEscaped splits s on sep, treating a backslash as escaping the
// character that follows it (so an escaped separator does not split).
// Adapted from the formatted-string splitting routine used throughout this
// package's encodings.
func splitEscaped(s string, sep rune) []string {
	var out []string
	prev, esc := 0, false
	for i, r := range s {
		switch {
		case esc:
			esc = false
		case r == '\\':
			esc = true
		case r == sep:
			out = append(out, s[prev:i])
			prev = i + 1
		}
	}
	out = append(out, s[prev:])
	return out
}
