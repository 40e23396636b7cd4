package session

import (
	"github.com/tchap/go-patricia/v2/patricia"
)

// historyStore keeps per-provider candidate history across cycles. Only
// history-tracked providers ever touch it; everything else is rebuilt
// per cycle.
type historyStore struct {
	entries map[string][]string
}

func newHistoryStore() *historyStore {
	return &historyStore{entries: make(map[string][]string)}
}

// blend prepends the stored entry for name to fresh, dedupes preserving
// order, and stores the merged result back as the new entry.
func (h *historyStore) blend(name string, fresh []string) []string {
	stored := h.entries[name]
	merged := make([]string, 0, len(stored)+len(fresh))
	seen := patricia.NewTrie()
	for _, group := range [][]string{stored, fresh} {
		for _, item := range group {
			key := patricia.Prefix(item)
			if seen.Get(key) != nil {
				continue
			}
			seen.Insert(key, true)
			merged = append(merged, item)
		}
	}
	h.entries[name] = merged
	return merged
}

// get returns the stored entry for name.
func (h *historyStore) get(name string) []string {
	return h.entries[name]
}

// clear drops all stored history.
func (h *historyStore) clear() {
	h.entries = make(map[string][]string)
}
