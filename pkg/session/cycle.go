package session

import (
	"github.com/tchap/go-patricia/v2/patricia"
)

// Cycle holds the state produced by one refresh pass: the per-provider
// candidate sets, the merged accumulation-order pool, and the attribution
// index. A cycle is built atomically by Refresh and discarded wholesale at
// the next input event; readers never observe it half-built.
type Cycle struct {
	// Input is the match string the cycle was refreshed for.
	Input string
	// NoPrefix is set when Input is a bare trigger symbol.
	NoPrefix bool
	// Candidates maps provider name to its ordered, deduplicated set.
	Candidates map[string][]string
	// Merged is the cross-provider deduplicated pool in accumulation order.
	Merged []string

	// attribution maps candidate text to the owning provider name,
	// first-registered provider wins on collisions.
	attribution *patricia.Trie
	// ownPrefix caches each provider's self-reported prefix for Input.
	ownPrefix map[string]string
}

func newCycle(input string, noPrefix bool) *Cycle {
	return &Cycle{
		Input:       input,
		NoPrefix:    noPrefix,
		Candidates:  make(map[string][]string),
		attribution: patricia.NewTrie(),
		ownPrefix:   make(map[string]string),
	}
}

// accumulate records one provider's deduplicated candidate set and claims
// unowned candidate text for it.
func (c *Cycle) accumulate(name string, candidates []string) {
	if len(candidates) == 0 {
		return
	}
	c.Candidates[name] = candidates
	for _, cand := range candidates {
		key := patricia.Prefix(cand)
		if c.attribution.Get(key) != nil {
			continue
		}
		c.attribution.Insert(key, name)
		c.Merged = append(c.Merged, cand)
	}
}

// Owner returns the provider owning the exact candidate text, resolving
// collisions in favor of the first provider that registered it.
func (c *Cycle) Owner(text string) (string, bool) {
	item := c.attribution.Get(patricia.Prefix(text))
	if item == nil {
		return "", false
	}
	return item.(string), true
}
