package provider

import (
	"github.com/windymelt/company-fuzzy/internal/textutil"
)

// Recent is a history-only source: it serves text the session has already
// committed. Its fetch prefix is forced empty by the resolver so every
// stored entry is dumped and blended by the history store.
type Recent struct {
	name    string
	entries []string
}

// NewRecent creates an empty recent-entries source.
func NewRecent(name string) *Recent {
	return &Recent{name: name}
}

func (r *Recent) Name() string { return r.name }

func (r *Recent) Kind() Kind { return KindHistory }

// Add records a committed candidate, most recent first.
func (r *Recent) Add(text string) {
	if text == "" {
		return
	}
	r.entries = textutil.Dedup(append([]string{text}, r.entries...))
}

func (r *Recent) Candidates(string) ([]string, error) {
	out := make([]string, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

func (r *Recent) Prefix(input string) (string, error) {
	return textutil.SymbolAt(input), nil
}

func (r *Recent) Doc(string) (string, error) { return "", nil }

func (r *Recent) Annotation(string) (string, error) { return "recent", nil }
