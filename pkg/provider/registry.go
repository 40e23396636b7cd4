package provider

import (
	"regexp"

	"github.com/charmbracelet/log"

	"github.com/windymelt/company-fuzzy/internal/textutil"
)

// Entry is one configured source list item: either a plain provider name or
// a group of provider names presented to the host as one logical entry.
type Entry struct {
	Name  string
	Group []string
}

// Recognized provider names are lowercase words with common separators,
// starting with a letter. Group members failing this are silently dropped;
// top-level entries are kept regardless.
var nameConvention = regexp.MustCompile(`^[a-z][a-z0-9._/-]*$`)

// RecognizedName reports whether s satisfies the provider naming convention.
func RecognizedName(s string) bool {
	return nameConvention.MatchString(s)
}

// Normalize flattens entries into an ordered, stably deduplicated provider
// name list. Groups are flattened preserving internal order and filtered to
// recognized names.
func Normalize(entries []Entry) []string {
	var names []string
	for _, e := range entries {
		if len(e.Group) > 0 {
			for _, member := range e.Group {
				if RecognizedName(member) {
					names = append(names, member)
				} else {
					log.Debugf("registry: dropping unrecognized group member %q", member)
				}
			}
			continue
		}
		if e.Name != "" {
			names = append(names, e.Name)
		}
	}
	return textutil.Dedup(names)
}

// Registry holds the configured source entries and caches the normalized
// name list until the entries change.
type Registry struct {
	entries []Entry
	names   []string
	valid   bool
}

// NewRegistry creates a registry over the given entries.
func NewRegistry(entries []Entry) *Registry {
	return &Registry{entries: entries}
}

// SetEntries replaces the configured entries and invalidates the cache.
func (r *Registry) SetEntries(entries []Entry) {
	r.entries = entries
	r.valid = false
}

// Names returns the normalized provider name list, computing it once and
// caching until SetEntries.
func (r *Registry) Names() []string {
	if !r.valid {
		r.names = Normalize(r.entries)
		r.valid = true
	}
	return r.names
}
