// Package prefix computes the three per-provider prefix views used by the
// completion pipeline: the fetch prefix sent to a provider, the match prefix
// used to fuzzily filter its candidates, and the insert prefix the host must
// treat as already typed before committing a candidate.
//
// Special-casing per provider kind is data, not identity checks: a capability
// table maps each provider to an override record, and unset fields fall back
// to the generic defaults. All three views are recomputed independently every
// cycle and may legitimately diverge per provider.
package prefix

import (
	"github.com/windymelt/company-fuzzy/internal/textutil"
	"github.com/windymelt/company-fuzzy/pkg/provider"
)

// Input carries the per-cycle text the views are computed from.
type Input struct {
	// Text is the current match string: the text being completed.
	Text string
	// Own is the provider's self-reported prefix for Text, already fetched
	// by the caller; empty when the provider has none.
	Own string
}

// View computes one prefix view from the cycle input.
type View func(in Input) string

// Ops is a capability record overriding prefix views for one provider.
// Nil fields fall back to the generic defaults.
type Ops struct {
	Fetch  View
	Match  View
	Insert View
}

// Generic defaults. Fetching only the first character deliberately widens
// the raw result set; the fuzzy pre-filter narrows it afterwards.
func fetchDefault(in Input) string  { return textutil.FirstChar(in.Text) }
func matchDefault(in Input) string  { return in.Text }
func insertDefault(in Input) string { return matchDefault(in) }

// OpsForKind returns the capability record for a provider kind.
func OpsForKind(kind provider.Kind) Ops {
	switch kind {
	case provider.KindNative:
		return Ops{Fetch: func(in Input) string { return in.Own }}
	case provider.KindHistory:
		// Empty fetch prefix forces a full dump of stored entries.
		return Ops{Fetch: func(Input) string { return "" }}
	case provider.KindCode:
		return Ops{Match: func(in Input) string { return textutil.SymbolAt(in.Text) }}
	case provider.KindPath:
		return Ops{
			Match:  func(in Input) string { return textutil.LastSegment(in.Text) },
			Insert: func(in Input) string { return in.Own },
		}
	default:
		return Ops{}
	}
}

// Resolver maps provider names to capability records.
type Resolver struct {
	overrides map[string]Ops
}

// NewResolver creates a resolver with no overrides; every provider gets the
// generic defaults until Set is called for it.
func NewResolver() *Resolver {
	return &Resolver{overrides: make(map[string]Ops)}
}

// Set installs the capability record for a provider name.
func (r *Resolver) Set(name string, ops Ops) {
	r.overrides[name] = ops
}

// SetKind installs the capability record derived from a provider kind.
func (r *Resolver) SetKind(name string, kind provider.Kind) {
	r.Set(name, OpsForKind(kind))
}

// FetchPrefix returns the text sent to the provider to request candidates.
func (r *Resolver) FetchPrefix(name string, in Input) string {
	if ops, ok := r.overrides[name]; ok && ops.Fetch != nil {
		return ops.Fetch(in)
	}
	return fetchDefault(in)
}

// MatchPrefix returns the text used to fuzzily filter the provider's
// candidates.
func (r *Resolver) MatchPrefix(name string, in Input) string {
	if ops, ok := r.overrides[name]; ok && ops.Match != nil {
		return ops.Match(in)
	}
	return matchDefault(in)
}

// InsertPrefix returns the text the host must treat as already typed
// immediately before committing a candidate from this provider.
func (r *Resolver) InsertPrefix(name string, in Input) string {
	if ops, ok := r.overrides[name]; ok && ops.Insert != nil {
		return ops.Insert(in)
	}
	if ops, ok := r.overrides[name]; ok && ops.Match != nil {
		return ops.Match(in)
	}
	return insertDefault(in)
}
