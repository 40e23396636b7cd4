// Package provider defines completion sources and the registry that
// normalizes the configured source list.
//
// A provider answers four command-style calls: candidates for a fetch
// prefix, its own notion of the prefix at point, documentation for a
// candidate, and an annotation for a candidate. Any error or malformed
// response is treated as "no result" by callers.
package provider

// Commands a provider must answer.
const (
	CmdCandidates = "candidates"
	CmdPrefix     = "prefix"
	CmdDoc        = "doc"
	CmdAnnotation = "annotation"
)

// Provider is a completion source queried for candidate text.
type Provider interface {
	// Name returns the provider identifier used in the registry.
	Name() string

	// Candidates returns raw suggestions for a fetch prefix. The returned
	// slice is ordered; duplicates are tolerated and removed by the caller.
	Candidates(prefix string) ([]string, error)

	// Prefix returns the provider's own notion of the prefix within input.
	Prefix(input string) (string, error)

	// Doc returns documentation text for a candidate, "" when none.
	Doc(candidate string) (string, error)

	// Annotation returns a short annotation for a candidate, "" when none.
	Annotation(candidate string) (string, error)
}

// Kind classifies a provider for prefix resolution overrides.
type Kind int

const (
	// KindGeneric gets default prefix behavior on all three views.
	KindGeneric Kind = iota
	// KindNative providers report their own fetch prefix unmodified.
	KindNative
	// KindHistory providers are fetched with an empty prefix to force a
	// full dump of their stored entries.
	KindHistory
	// KindCode providers match against the code symbol at the cursor.
	KindCode
	// KindPath providers match against the last path segment and insert
	// their own reported prefix unmodified.
	KindPath
)

// ParseKind maps a config kind name to a Kind. Unknown names are generic.
func ParseKind(s string) Kind {
	switch s {
	case "native":
		return KindNative
	case "history":
		return KindHistory
	case "code":
		return KindCode
	case "path":
		return KindPath
	default:
		return KindGeneric
	}
}

// Classified is implemented by providers that know their own kind.
// Providers without it are treated as generic unless config says otherwise.
type Classified interface {
	Kind() Kind
}

// KindOf returns the provider's self-reported kind, or KindGeneric.
func KindOf(p Provider) Kind {
	if c, ok := p.(Classified); ok {
		return c.Kind()
	}
	return KindGeneric
}
