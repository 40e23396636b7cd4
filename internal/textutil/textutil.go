// Package textutil holds small text helpers shared by the prefix resolver and
// the candidate pipeline.
package textutil

import (
	"strings"
	"unicode"
)

// IsSeparator checks if a rune is a separator character
func IsSeparator(r rune) bool {
	return r == ' ' || r == '_' || r == '-' || r == '.' || r == '/'
}

// IsSymbolRune reports whether a rune can be part of a code symbol.
func IsSymbolRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// FirstChar returns the first character of s as a string, or "" when empty.
func FirstChar(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

// SymbolAt returns the trailing code symbol of s: the longest run of
// letters, digits and underscores ending at the end of s.
func SymbolAt(s string) string {
	runes := []rune(s)
	i := len(runes)
	for i > 0 && IsSymbolRune(runes[i-1]) {
		i--
	}
	return string(runes[i:])
}

// LastSegment returns the part of s after the last path separator.
// A string without separators is returned unchanged.
func LastSegment(s string) string {
	if idx := strings.LastIndexByte(s, '/'); idx >= 0 {
		return s[idx+1:]
	}
	return s
}

// TrailingPath returns the trailing filesystem-path-like token of s:
// the longest run of path runes ending at the end of s.
func TrailingPath(s string) string {
	runes := []rune(s)
	i := len(runes)
	for i > 0 && isPathRune(runes[i-1]) {
		i--
	}
	return string(runes[i:])
}

func isPathRune(r rune) bool {
	return IsSymbolRune(r) || r == '.' || r == '-' || r == '/' || r == '~'
}

// Dedup removes duplicate strings preserving first-seen order.
func Dedup(items []string) []string {
	if len(items) < 2 {
		return items
	}
	seen := make(map[string]struct{}, len(items))
	out := items[:0:0]
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
