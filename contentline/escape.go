package contentline

import "strings"

// SplitUnescaped splits s on unescaped occurrences of sep. The pieces keep
// their escape sequences, so they can be split again on another delimiter.
// Use SplitEscaped for the last split of a value.
func SplitUnescaped(s string, sep byte) []string {
	var parts []string
	start := 0
	esc := false
	for i := 0; i < len(s); i++ {
		if esc {
			esc = false
			continue
		}
		switch s[i] {
		case Escape:
			esc = true
		case sep:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

// SplitEscaped splits s on unescaped occurrences of sep and resolves the
// escape sequences in the returned pieces. A backslash makes the byte after
// it literal and is itself dropped; a trailing backslash is dropped as well.
// The empty string splits into one empty piece.
//
// This is the terminal split of a value: the pieces contain no escapes and
// must not be split again.
func SplitEscaped(s string, sep byte) []string {
	parts := make([]string, 0, 4)
	var buf strings.Builder
	esc := false
	for i := 0; i < len(s); i++ {
		b := s[i]
		if esc {
			buf.WriteByte(b)
			esc = false
			continue
		}
		switch b {
		case Escape:
			esc = true
		case sep:
			parts = append(parts, buf.String())
			buf.Reset()
		default:
			buf.WriteByte(b)
		}
	}
	return append(parts, buf.String())
}

// AppendEscaped appends s to dst with backslashes, semicolons and commas
// escaped. Together with SplitEscaped this round-trips any value.
func AppendEscaped(dst []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch b {
		case Escape, ParamDelimiter, ListDelimiter:
			dst = append(dst, Escape)
		}
		dst = append(dst, b)
	}
	return dst
}
