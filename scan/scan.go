// Package scan prepares JSON input text for parsing.
package scan

import "strings"

var bytemapIsSpace = [256]byte{
	' ': 1, '\t': 1, '\n': 1, '\r': 1, '\v': 1, '\f': 1,
}

var bytemapIsDigit = func() (m [256]byte) {
	for c := '0'; c <= '9'; c++ {
		m[c] = 1
	}
	return
}()

// IsSpace reports whether c is a whitespace byte.
func IsSpace(c byte) bool {
	return bytemapIsSpace[c] == 1
}

// IsDigit reports whether c is a decimal digit.
func IsDigit(c byte) bool {
	return bytemapIsDigit[c] == 1
}

// StripSpace removes every whitespace byte that falls outside of
// double-quoted regions.
//
// Region tracking toggles on every '"' byte, escaped or not: a string
// body containing `\"` mis-toggles the tracker and whitespace after
// the escaped quote is treated as outside the string. This is a known
// limitation of the prepass, not handled here.
func StripSpace(s string) string {
	i := indexStrippable(s)
	if i < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])
	inside := insideQuotes(s[:i])
	for ; i < len(s); i++ {
		c := s[i]
		if c == '"' {
			inside = !inside
		}
		if bytemapIsSpace[c] == 1 && !inside {
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// indexStrippable finds the first whitespace byte outside quotes.
func indexStrippable(s string) int {
	inside := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' {
			inside = !inside
		}
		if bytemapIsSpace[c] == 1 && !inside {
			return i
		}
	}
	return -1
}

func insideQuotes(s string) bool {
	inside := false
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			inside = !inside
		}
	}
	return inside
}

// Number scans a number token at the start of s: a maximal run of
// digits with at most one decimal dot. A second dot ends the token.
// It returns the token length and whether a dot was seen.
func Number(s string) (end int, isFloat bool) {
	for end < len(s) {
		switch c := s[end]; {
		case bytemapIsDigit[c] == 1:
		case c == '.' && !isFloat:
			isFloat = true
		default:
			return end, isFloat
		}
		end++
	}
	return end, isFloat
}
