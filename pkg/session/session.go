// Package session orchestrates the completion pipeline for one interactive
// session: it queries providers in registry order, pre-filters and blends
// their candidates, attributes candidate text to its owning provider, and
// ranks the merged pool.
//
// Execution is single-threaded and cooperative. Every input event produces a
// fresh cycle that runs to completion and fully supersedes the previous one;
// a provider that blocks indefinitely stalls the whole cycle, which is a
// documented limitation. Only the history store outlives a cycle, and it is
// cleared when the session closes.
package session

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/windymelt/company-fuzzy/internal/textutil"
	"github.com/windymelt/company-fuzzy/pkg/fuzzy"
	"github.com/windymelt/company-fuzzy/pkg/prefix"
	"github.com/windymelt/company-fuzzy/pkg/provider"
	"github.com/windymelt/company-fuzzy/pkg/rank"
)

// Options configures a session. The zero value gives accumulation-order
// results with no promotion, no triggers, and no history tracking.
type Options struct {
	// Entries is the configured source list; groups are flattened and
	// deduplicated by the registry.
	Entries []provider.Entry
	// Strategy selects the sort strategy.
	Strategy rank.Strategy
	// PromotePrefix enables prefix promotion after the strategy pass.
	PromotePrefix bool
	// AnnotationFormat renders the owning provider name into annotations,
	// e.g. " <%s>".
	AnnotationFormat string
	// TriggerSymbols lists inputs that enable no-prefix mode, e.g. ".".
	TriggerSymbols []string
	// HistoryProviders names providers whose candidates blend across
	// cycles. Providers of KindHistory are tracked implicitly.
	HistoryProviders []string
	// Kinds overrides provider kinds by name, taking precedence over a
	// provider's self-reported kind.
	Kinds map[string]provider.Kind

	// Scorer, TieBreak and Hook plug into the sort engine.
	Scorer   rank.Scorer
	TieBreak func(a, b string) bool
	Hook     func([]string) []string
}

// Session is the aggregate completion frontend: it answers the candidates,
// prefix, doc and annotation commands on behalf of all registered providers.
type Session struct {
	id       string
	opts     Options
	registry *provider.Registry
	catalog  map[string]provider.Provider
	resolver *prefix.Resolver
	sorter   *rank.Sorter
	history  *historyStore
	tracked  map[string]bool
	cycle    *Cycle
}

// New creates a session over the given providers. Providers not named by
// the normalized registry contribute nothing.
func New(opts Options, providers ...provider.Provider) *Session {
	s := &Session{
		id:       uuid.NewString(),
		opts:     opts,
		registry: provider.NewRegistry(opts.Entries),
		catalog:  make(map[string]provider.Provider, len(providers)),
		resolver: prefix.NewResolver(),
		history:  newHistoryStore(),
		tracked:  make(map[string]bool),
		sorter: &rank.Sorter{
			Strategy:      opts.Strategy,
			PromotePrefix: opts.PromotePrefix,
			Scorer:        opts.Scorer,
			TieBreak:      opts.TieBreak,
			Hook:          opts.Hook,
		},
	}
	for _, p := range providers {
		s.Register(p)
	}
	for _, name := range opts.HistoryProviders {
		s.tracked[name] = true
	}
	log.Debugf("session %s: %d providers, strategy=%s", s.id, len(s.catalog), opts.Strategy)
	return s
}

// ID returns the session identifier used for log correlation.
func (s *Session) ID() string { return s.id }

// Register adds a provider to the catalog and installs its prefix
// capability record.
func (s *Session) Register(p provider.Provider) {
	name := p.Name()
	s.catalog[name] = p
	kind := provider.KindOf(p)
	if override, ok := s.opts.Kinds[name]; ok {
		kind = override
	}
	s.resolver.SetKind(name, kind)
	if kind == provider.KindHistory {
		s.tracked[name] = true
	}
}

// SetEntries replaces the configured source list.
func (s *Session) SetEntries(entries []provider.Entry) {
	s.registry.SetEntries(entries)
}

// SetStrategy switches the sort strategy at runtime.
func (s *Session) SetStrategy(strategy rank.Strategy) {
	s.sorter.Strategy = strategy
}

// SetPromotePrefix toggles prefix promotion at runtime.
func (s *Session) SetPromotePrefix(on bool) {
	s.sorter.PromotePrefix = on
}

// Refresh runs the aggregation pass for one input event and installs the
// resulting cycle. Provider failures are swallowed: a failing provider
// contributes nothing and never aborts the cycle for the others.
func (s *Session) Refresh(input string) *Cycle {
	c := newCycle(input, s.noPrefixMode(input))
	for _, name := range s.registry.Names() {
		p, ok := s.catalog[name]
		if !ok {
			log.Debugf("session %s: no provider registered for %q", s.id, name)
			continue
		}

		own, err := p.Prefix(input)
		if err != nil {
			log.Debugf("session %s: provider %q prefix: %v", s.id, name, err)
			own = ""
		}
		c.ownPrefix[name] = own
		in := prefix.Input{Text: input, Own: own}

		raw, err := p.Candidates(s.resolver.FetchPrefix(name, in))
		if err != nil {
			log.Warnf("session %s: provider %q: %v", s.id, name, err)
			raw = nil
		}
		if !c.NoPrefix && len(raw) > 0 {
			raw = fuzzy.Filter(raw, s.resolver.InsertPrefix(name, in))
		}
		if s.tracked[name] {
			raw = s.history.blend(name, raw)
		}
		c.accumulate(name, textutil.Dedup(dropEmpty(raw)))
	}
	s.cycle = c
	return c
}

// Complete runs a full cycle for input and returns the ranked candidate
// list: refresh, attribution, then the sort engine with per-candidate match
// prefixes resolved through the attribution index.
func (s *Session) Complete(input string) []string {
	c := s.Refresh(input)
	return s.sorter.Sort(c.Merged, input, c.NoPrefix, func(cand string) string {
		owner, ok := c.Owner(cand)
		if !ok {
			return input
		}
		return s.resolver.MatchPrefix(owner, prefix.Input{Text: input, Own: c.ownPrefix[owner]})
	})
}

// Cycle returns the cycle produced by the most recent refresh, or nil
// before the first input event.
func (s *Session) Cycle() *Cycle {
	return s.cycle
}

// Prefix answers the prefix command: the text the host should consider
// under completion for this input.
func (s *Session) Prefix(input string) string {
	return textutil.SymbolAt(input)
}

// Doc returns documentation for a candidate from its owning provider, or ""
// when unowned or the provider errors.
func (s *Session) Doc(text string) string {
	p, ok := s.owner(text)
	if !ok {
		return ""
	}
	doc, err := p.Doc(text)
	if err != nil {
		log.Debugf("session %s: provider %q doc: %v", s.id, p.Name(), err)
		return ""
	}
	return doc
}

// Annotation returns a candidate's annotation with the owning provider name
// rendered through the configured annotation format.
func (s *Session) Annotation(text string) string {
	p, ok := s.owner(text)
	if !ok {
		return ""
	}
	ann, err := p.Annotation(text)
	if err != nil {
		log.Debugf("session %s: provider %q annotation: %v", s.id, p.Name(), err)
		ann = ""
	}
	if s.opts.AnnotationFormat == "" {
		return ann
	}
	return ann + fmt.Sprintf(s.opts.AnnotationFormat, p.Name())
}

// PreInsert returns the insert prefix of the candidate's owning provider:
// the text the host must treat as already typed immediately before
// committing the candidate, so substitution is correct.
func (s *Session) PreInsert(text string) string {
	c := s.cycle
	if c == nil {
		return ""
	}
	owner, ok := c.Owner(text)
	if !ok {
		return c.Input
	}
	return s.resolver.InsertPrefix(owner, prefix.Input{Text: c.Input, Own: c.ownPrefix[owner]})
}

// Commit records a chosen candidate into every history provider that
// accepts committed text, and returns the pre-insert adjustment.
func (s *Session) Commit(text string) string {
	for name := range s.tracked {
		if rec, ok := s.catalog[name].(interface{ Add(string) }); ok {
			rec.Add(text)
		}
	}
	return s.PreInsert(text)
}

// History returns the stored history entry for a provider, for inspection.
func (s *Session) History(name string) []string {
	return s.history.get(name)
}

// Close ends the session: history is dropped and the current cycle cleared.
func (s *Session) Close() {
	s.history.clear()
	s.cycle = nil
	log.Debugf("session %s: closed", s.id)
}

func (s *Session) noPrefixMode(input string) bool {
	return input != "" && slices.Contains(s.opts.TriggerSymbols, input)
}

func (s *Session) owner(text string) (provider.Provider, bool) {
	if s.cycle == nil {
		return nil, false
	}
	name, ok := s.cycle.Owner(text)
	if !ok {
		return nil, false
	}
	p, ok := s.catalog[name]
	return p, ok
}

func dropEmpty(items []string) []string {
	return slices.DeleteFunc(slices.Clone(items), func(s string) bool { return s == "" })
}
