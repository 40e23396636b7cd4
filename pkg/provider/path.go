package provider

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/windymelt/company-fuzzy/internal/textutil"
)

// PathSource completes filesystem paths under a root directory.
// It reports its own prefix (the trailing path fragment of the input)
// unmodified, which the resolver uses as the insert prefix.
type PathSource struct {
	name string
	root string
}

// NewPathSource creates a path completion source rooted at root.
// An empty root means the current working directory.
func NewPathSource(name, root string) *PathSource {
	if root == "" {
		root = "."
	}
	return &PathSource{name: name, root: root}
}

func (p *PathSource) Name() string { return p.name }

func (p *PathSource) Kind() Kind { return KindPath }

// Candidates lists directory entries matching the path fragment. The
// fragment's directory part selects the directory, its base filters entries.
func (p *PathSource) Candidates(fragment string) ([]string, error) {
	dir, base := splitFragment(fragment)
	entries, err := os.ReadDir(filepath.Join(p.root, dir))
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		name := e.Name()
		if base != "" && !strings.HasPrefix(strings.ToLower(name), strings.ToLower(base)) {
			continue
		}
		if e.IsDir() {
			name += "/"
		}
		out = append(out, dir+name)
	}
	return out, nil
}

// splitFragment splits a path fragment into its directory part (keeping the
// trailing slash) and the partial base name being completed.
func splitFragment(fragment string) (dir, base string) {
	idx := strings.LastIndexByte(fragment, '/')
	if idx < 0 {
		return "", fragment
	}
	return fragment[:idx+1], fragment[idx+1:]
}

func (p *PathSource) Prefix(input string) (string, error) {
	return textutil.TrailingPath(input), nil
}

func (p *PathSource) Doc(candidate string) (string, error) {
	info, err := os.Stat(filepath.Join(p.root, candidate))
	if err != nil {
		return "", nil
	}
	if info.IsDir() {
		return candidate + " (directory)", nil
	}
	return candidate, nil
}

func (p *PathSource) Annotation(candidate string) (string, error) {
	if strings.HasSuffix(candidate, "/") {
		return "dir", nil
	}
	return "", nil
}
