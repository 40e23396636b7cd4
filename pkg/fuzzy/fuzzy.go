// Package fuzzy compiles match strings into ordered-subsequence patterns and
// pre-filters candidate sets with them.
//
// A candidate matches when the characters of the match string occur in it in
// order, with arbitrary non-newline runs permitted between consecutive
// characters. This is classic fuzzy subsequence matching, not substring
// containment: "ab" matches "axbx" and "ab" but not "ba".
package fuzzy

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
)

// Pattern is a compiled ordered-subsequence match pattern.
type Pattern struct {
	re  *regexp.Regexp
	src string
}

// Compile builds a Pattern from a match string.
//
// A single dangling trailing alternation operator is trimmed first; left in
// place it would match the empty string and defeat filtering entirely.
// Leading "^" and trailing "$" anchors are preserved as anchors rather than
// treated as required characters.
func Compile(str string) (*Pattern, error) {
	body := str
	if strings.HasSuffix(body, "|") {
		body = strings.TrimSuffix(body, "|")
	}

	var head, tail string
	if strings.HasPrefix(body, "^") {
		head = "^"
		body = body[1:]
	}
	if strings.HasSuffix(body, "$") {
		tail = "$"
		body = body[:len(body)-1]
	}

	var sb strings.Builder
	sb.WriteString(head)
	for i, r := range []rune(body) {
		if i > 0 {
			sb.WriteString("[^\n]*")
		}
		sb.WriteString(regexp.QuoteMeta(string(r)))
	}
	sb.WriteString(tail)

	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, err
	}
	return &Pattern{re: re, src: str}, nil
}

// MatchString reports whether the candidate contains the pattern's
// characters in order.
func (p *Pattern) MatchString(candidate string) bool {
	return p.re.MatchString(candidate)
}

// String returns the match string the pattern was compiled from.
func (p *Pattern) String() string {
	return p.src
}

// Filter returns the candidates matching str, preserving input order.
// It is a boolean pre-filter only; no scoring happens here. When the match
// string cannot be compiled the candidates pass through unfiltered, which
// degrades the list rather than losing it.
func Filter(candidates []string, str string) []string {
	if len(candidates) == 0 {
		return candidates
	}
	p, err := Compile(str)
	if err != nil {
		log.Warnf("fuzzy: cannot compile %q: %v", str, err)
		return candidates
	}
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if p.MatchString(c) {
			out = append(out, c)
		}
	}
	return out
}
