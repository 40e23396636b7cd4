// Package rank orders the merged candidate pool under a selected strategy
// and applies prefix promotion.
package rank

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	sahilm "github.com/sahilm/fuzzy"
)

// Strategy selects how the merged candidate pool is ordered.
type Strategy string

const (
	// StrategyNone keeps accumulation order.
	StrategyNone Strategy = "none"
	// StrategyAlphabetic is total lexicographic order.
	StrategyAlphabetic Strategy = "alphabetic"
	// StrategyScore ranks by a pluggable scoring function, higher first.
	StrategyScore Strategy = "score"
)

// ParseStrategy maps a config value to a Strategy. The second return is
// false for unrecognized values, which fall back to accumulation order.
func ParseStrategy(s string) (Strategy, bool) {
	switch Strategy(s) {
	case StrategyNone, StrategyAlphabetic, StrategyScore:
		return Strategy(s), true
	default:
		return StrategyNone, false
	}
}

// Scorer scores a candidate against a match prefix. ok=false means the
// candidate is unscoreable and is dropped from the ranked output.
type Scorer func(candidate, prefix string) (score int, ok bool)

// DefaultScorer scores with sahilm/fuzzy's match ranking.
func DefaultScorer(candidate, prefix string) (int, bool) {
	if prefix == "" {
		return 0, false
	}
	matches := sahilm.Find(prefix, []string{candidate})
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0].Score, true
}

// PrefixFunc resolves the match prefix for one candidate, normally via the
// cycle's attribution index and the owning provider's prefix view.
type PrefixFunc func(candidate string) string

// Sorter ranks merged candidate pools. The zero value keeps accumulation
// order; it is a pure function of its inputs and configuration.
type Sorter struct {
	Strategy      Strategy
	PromotePrefix bool

	// Scorer is used by StrategyScore; nil means DefaultScorer.
	Scorer Scorer
	// TieBreak optionally reorders candidates sharing one score bucket.
	TieBreak func(a, b string) bool
	// Hook, when set, receives the final ordered list and its return value
	// is used verbatim, overriding everything else.
	Hook func([]string) []string
}

// Sort ranks candidates for the given input. In no-prefix mode the pool is
// returned in accumulation order untouched: trigger-only completions have no
// meaningful prefix to rank against, so neither promotion nor hooks apply.
func (s *Sorter) Sort(candidates []string, input string, noPrefix bool, matchPrefix PrefixFunc) []string {
	if noPrefix {
		return candidates
	}

	out := candidates
	switch s.Strategy {
	case StrategyNone:
	case StrategyAlphabetic:
		out = append([]string(nil), candidates...)
		sort.Strings(out)
	case StrategyScore:
		out = s.sortByScore(candidates, input, matchPrefix)
	default:
		log.Debugf("rank: unrecognized strategy %q, keeping accumulation order", s.Strategy)
	}

	if s.PromotePrefix {
		out = promote(out, input)
	}
	if s.Hook != nil {
		out = s.Hook(out)
	}
	return out
}

// sortByScore groups scored candidates into integer buckets and concatenates
// the buckets from highest to lowest score. Within a bucket candidates are
// ordered by ascending length then lexicographically, then by the optional
// user tie-break. Unscoreable candidates vanish from the output.
func (s *Sorter) sortByScore(candidates []string, input string, matchPrefix PrefixFunc) []string {
	scorer := s.Scorer
	if scorer == nil {
		scorer = DefaultScorer
	}

	buckets := make(map[int][]string)
	var scores []int
	for _, c := range candidates {
		pre := input
		if matchPrefix != nil {
			pre = matchPrefix(c)
		}
		score, ok := scorer(c, pre)
		if !ok {
			log.Debugf("rank: no score for %q, dropping", c)
			continue
		}
		if _, seen := buckets[score]; !seen {
			scores = append(scores, score)
		}
		buckets[score] = append(buckets[score], c)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(scores)))

	out := make([]string, 0, len(candidates))
	for _, score := range scores {
		bucket := buckets[score]
		sort.SliceStable(bucket, func(i, j int) bool {
			if len(bucket[i]) != len(bucket[j]) {
				return len(bucket[i]) < len(bucket[j])
			}
			return bucket[i] < bucket[j]
		})
		if s.TieBreak != nil {
			sort.SliceStable(bucket, func(i, j int) bool {
				return s.TieBreak(bucket[i], bucket[j])
			})
		}
		out = append(out, bucket...)
	}
	return out
}

// promote moves candidates sharing the longest matched truncation of the
// match string to the front, alphabetically among themselves; the remainder
// keeps its relative order. Truncation drops the last character repeatedly
// and stops before the remaining length would reach 1.
func promote(candidates []string, match string) []string {
	if match == "" || len(candidates) == 0 {
		return candidates
	}

	pre := []rune(match)
	for {
		if anyHasPrefix(candidates, string(pre)) {
			break
		}
		if len(pre)-1 <= 1 {
			return candidates
		}
		pre = pre[:len(pre)-1]
	}

	prefix := string(pre)
	promoted := make([]string, 0, len(candidates))
	rest := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			promoted = append(promoted, c)
		} else {
			rest = append(rest, c)
		}
	}
	sort.Strings(promoted)
	return append(promoted, rest...)
}

func anyHasPrefix(candidates []string, prefix string) bool {
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}
