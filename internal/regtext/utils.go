package regtext

import (
	"strings"
)

// ScanEscaped extracts a token from the start of line.
//
// If line starts with a quote, the token is the text between it and the
// first unescaped closing quote; a backslash makes the following character
// literal, so \" does not close the token. Otherwise the token is the text
// before the first unescaped occurrence of term.
//
// end is the index in line just past the token (past the closing quote, or
// at the terminator). Escapes are left in the token; see UnescapeRegString.
// If nothing closes the token, ok is false and token is the whole remaining
// string, unmodified.
func ScanEscaped(line string, term byte) (token string, end int, ok bool) {
	if len(line) > 0 && line[0] == Quote {
		idx, _ := findUnescaped(line, 1, Quote)
		if idx < 0 {
			return line, len(line), false
		}
		return line[1:idx], idx + 1, true
	}
	idx, _ := findUnescaped(line, 0, term)
	if idx < 0 {
		return line, len(line), false
	}
	return line[:idx], idx, true
}

// findUnescaped returns the index of the first c at or after from that is not
// escaped by a backslash, or -1. resume is where a later scan over a longer
// version of s should continue; it is past len(s) when s ends in a dangling
// backslash that escapes whatever gets appended next.
func findUnescaped(s string, from int, c byte) (idx, resume int) {
	i := from
	for i < len(s) {
		switch s[i] {
		case Backslash:
			i += 2
		case c:
			return i, i
		default:
			i++
		}
	}
	return -1, i
}

// UnescapeRegString removes .reg escaping: \" becomes " and \\ becomes \.
// A backslash before any other character is kept as written.
func UnescapeRegString(s string) string {
	// Fast path: no backslashes = no escapes (zero allocation)
	if strings.IndexByte(s, Backslash) == -1 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == Backslash && i+1 < len(s) && (s[i+1] == Quote || s[i+1] == Backslash) {
			i++
			c = s[i]
		}
		b.WriteByte(c)
	}
	return b.String()
}

// hexCharToNibble converts a hex character to its 4-bit value
// Returns 0xFF for invalid characters.
func hexCharToNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0xFF
	}
}

// isHexDigits reports whether s is non-empty and made only of hex digits.
func isHexDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if hexCharToNibble(s[i]) == 0xFF {
			return false
		}
	}
	return true
}

// hasPrefixFold reports whether s begins with prefix, ignoring ASCII case.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// endsWithContinuation reports whether a trimmed hex line continues on the next line.
func endsWithContinuation(s string) bool {
	return len(s) > 0 && s[len(s)-1] == Backslash
}
