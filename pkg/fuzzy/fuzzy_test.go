package fuzzy

import (
	"reflect"
	"testing"
)

func TestCompileSubsequence(t *testing.T) {
	cases := []struct {
		pattern   string
		candidate string
		match     bool
	}{
		{"ab", "axbx", true},
		{"ab", "ab", true},
		{"ab", "ba", false},
		{"ab", "a\nb", false},
		{"fb", "foobar", true},
		{"fb", "barfoo", false},
		{"", "anything", true},
		{"a.c", "a.c", true},
		{"a.c", "abc", false},
	}
	for _, tc := range cases {
		t.Run(tc.pattern+"/"+tc.candidate, func(t *testing.T) {
			p, err := Compile(tc.pattern)
			if err != nil {
				t.Fatalf("Compile(%q) error: %v", tc.pattern, err)
			}
			if got := p.MatchString(tc.candidate); got != tc.match {
				t.Errorf("Compile(%q).MatchString(%q) = %v, want %v", tc.pattern, tc.candidate, got, tc.match)
			}
		})
	}
}

// A dangling alternation would match the empty string and let every
// candidate through; "a|" must behave exactly like "a".
func TestCompileTrimsDanglingAlternation(t *testing.T) {
	candidates := []string{"apple", "banana", "cherry"}
	plain := Filter(candidates, "a")
	dangling := Filter(candidates, "a|")
	if !reflect.DeepEqual(plain, dangling) {
		t.Errorf("Filter with %q = %v, with %q = %v; want identical", "a", plain, "a|", dangling)
	}
}

func TestCompileKeepsAnchors(t *testing.T) {
	p, err := Compile("^ab$")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if !p.MatchString("axb") {
		t.Errorf("anchored pattern should match %q", "axb")
	}
	if p.MatchString("xab") {
		t.Errorf("leading anchor should reject %q", "xab")
	}
	if p.MatchString("abx") {
		t.Errorf("trailing anchor should reject %q", "abx")
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	candidates := []string{"foobar", "zebra", "fob", "bar"}
	got := Filter(candidates, "fb")
	want := []string{"foobar", "fob"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filter() = %v, want %v", got, want)
	}
}

func TestFilterEmptyPatternKeepsAll(t *testing.T) {
	candidates := []string{"x", "y"}
	got := Filter(candidates, "")
	if !reflect.DeepEqual(got, candidates) {
		t.Errorf("Filter(\"\") = %v, want %v", got, candidates)
	}
}
