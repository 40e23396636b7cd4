package rank

import (
	"reflect"
	"testing"
)

func staticScorer(table map[string]int) Scorer {
	return func(candidate, prefix string) (int, bool) {
		score, ok := table[candidate]
		return score, ok
	}
}

func TestSortNoneKeepsAccumulationOrder(t *testing.T) {
	s := &Sorter{Strategy: StrategyNone}
	in := []string{"b", "a", "c"}
	got := s.Sort(in, "x", false, nil)
	if !reflect.DeepEqual(got, in) {
		t.Errorf("Sort() = %v, want %v", got, in)
	}
}

func TestSortAlphabeticIsNonDecreasing(t *testing.T) {
	s := &Sorter{Strategy: StrategyAlphabetic}
	got := s.Sort([]string{"pear", "apple", "mango", "apple"}, "a", false, nil)
	for i := 1; i < len(got); i++ {
		if got[i-1] > got[i] {
			t.Fatalf("output not sorted at %d: %v", i, got)
		}
	}
}

func TestSortScoreBuckets(t *testing.T) {
	s := &Sorter{
		Strategy: StrategyScore,
		Scorer:   staticScorer(map[string]int{"abc": 3, "abd": 3, "xyz": 1}),
	}
	got := s.Sort([]string{"xyz", "abd", "abc"}, "ab", false, nil)
	want := []string{"abc", "abd", "xyz"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sort() = %v, want %v", got, want)
	}
}

func TestSortScoreDropsUnscoreable(t *testing.T) {
	s := &Sorter{
		Strategy: StrategyScore,
		Scorer:   staticScorer(map[string]int{"kept": 5}),
	}
	got := s.Sort([]string{"kept", "vanishes"}, "ke", false, nil)
	want := []string{"kept"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sort() = %v, want %v", got, want)
	}
}

func TestSortScoreLengthThenAlphaWithinBucket(t *testing.T) {
	s := &Sorter{
		Strategy: StrategyScore,
		Scorer:   staticScorer(map[string]int{"bb": 2, "a": 2, "ab": 2}),
	}
	got := s.Sort([]string{"bb", "a", "ab"}, "x", false, nil)
	want := []string{"a", "ab", "bb"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sort() = %v, want %v", got, want)
	}
}

func TestSortScoreTieBreakHook(t *testing.T) {
	s := &Sorter{
		Strategy: StrategyScore,
		Scorer:   staticScorer(map[string]int{"aa": 2, "bb": 2}),
		TieBreak: func(a, b string) bool { return a > b },
	}
	got := s.Sort([]string{"aa", "bb"}, "x", false, nil)
	want := []string{"bb", "aa"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sort() = %v, want %v", got, want)
	}
}

func TestSortUsesPerCandidateMatchPrefix(t *testing.T) {
	var seen []string
	s := &Sorter{
		Strategy: StrategyScore,
		Scorer: func(candidate, prefix string) (int, bool) {
			seen = append(seen, prefix)
			return 1, true
		},
	}
	s.Sort([]string{"one", "two"}, "input", false, func(c string) string {
		return "pre-" + c
	})
	want := []string{"pre-one", "pre-two"}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("scorer saw prefixes %v, want %v", seen, want)
	}
}

func TestPrefixPromotion(t *testing.T) {
	s := &Sorter{Strategy: StrategyNone, PromotePrefix: true}
	got := s.Sort([]string{"foobar", "zzz", "foo"}, "foo", false, nil)
	want := []string{"foo", "foobar", "zzz"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sort() = %v, want %v", got, want)
	}
}

func TestPrefixPromotionTruncates(t *testing.T) {
	// "fooz" matches nothing, "foo" does; remainder keeps its order.
	s := &Sorter{Strategy: StrategyNone, PromotePrefix: true}
	got := s.Sort([]string{"zzz", "foobar", "aaa", "foo"}, "fooz", false, nil)
	want := []string{"foo", "foobar", "zzz", "aaa"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sort() = %v, want %v", got, want)
	}
}

func TestPrefixPromotionStopsBeforeSingleChar(t *testing.T) {
	s := &Sorter{Strategy: StrategyNone, PromotePrefix: true}
	in := []string{"zebra", "yak"}
	got := s.Sort(in, "fo", false, nil)
	if !reflect.DeepEqual(got, in) {
		t.Errorf("Sort() = %v, want unchanged %v", got, in)
	}
}

func TestNoPrefixModeSkipsEverything(t *testing.T) {
	s := &Sorter{
		Strategy:      StrategyAlphabetic,
		PromotePrefix: true,
		Hook:          func([]string) []string { return []string{"hijacked"} },
	}
	in := []string{"b", "a"}
	got := s.Sort(in, ".", true, nil)
	if !reflect.DeepEqual(got, in) {
		t.Errorf("Sort() in no-prefix mode = %v, want untouched %v", got, in)
	}
}

func TestGlobalHookWinsVerbatim(t *testing.T) {
	s := &Sorter{
		Strategy: StrategyAlphabetic,
		Hook:     func(in []string) []string { return []string{in[len(in)-1]} },
	}
	got := s.Sort([]string{"b", "a", "c"}, "x", false, nil)
	want := []string{"c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sort() = %v, want hook output %v", got, want)
	}
}

func TestUnrecognizedStrategyKeepsOrder(t *testing.T) {
	s := &Sorter{Strategy: Strategy("frecency")}
	in := []string{"b", "a"}
	got := s.Sort(in, "x", false, nil)
	if !reflect.DeepEqual(got, in) {
		t.Errorf("Sort() = %v, want accumulation order %v", got, in)
	}
}

func TestSortIsDeterministic(t *testing.T) {
	s := &Sorter{
		Strategy:      StrategyScore,
		PromotePrefix: true,
		Scorer:        staticScorer(map[string]int{"foo": 2, "foobar": 2, "other": 1}),
	}
	in := []string{"other", "foobar", "foo"}
	first := s.Sort(append([]string(nil), in...), "foo", false, nil)
	for i := 0; i < 10; i++ {
		again := s.Sort(append([]string(nil), in...), "foo", false, nil)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Sort() not deterministic: %v vs %v", first, again)
		}
	}
}

func TestParseStrategy(t *testing.T) {
	cases := []struct {
		input string
		want  Strategy
		ok    bool
	}{
		{"none", StrategyNone, true},
		{"alphabetic", StrategyAlphabetic, true},
		{"score", StrategyScore, true},
		{"frecency", StrategyNone, false},
		{"", StrategyNone, false},
	}
	for _, tc := range cases {
		got, ok := ParseStrategy(tc.input)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseStrategy(%q) = (%v, %v), want (%v, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDefaultScorer(t *testing.T) {
	if _, ok := DefaultScorer("candidate", ""); ok {
		t.Errorf("empty prefix should be unscoreable")
	}
	if _, ok := DefaultScorer("xyz", "ab"); ok {
		t.Errorf("non-matching candidate should be unscoreable")
	}
	score, ok := DefaultScorer("abc", "ab")
	if !ok {
		t.Fatalf("matching candidate should score")
	}
	worse, ok := DefaultScorer("axxbxxc", "ab")
	if !ok {
		t.Fatalf("subsequence candidate should score")
	}
	if score <= worse {
		t.Errorf("tight match should outscore loose match: %d vs %d", score, worse)
	}
}
