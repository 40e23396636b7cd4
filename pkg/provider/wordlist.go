package provider

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/windymelt/company-fuzzy/internal/textutil"
)

// WordList is an in-memory completion source over a ranked word set.
// Words are served in descending frequency order.
type WordList struct {
	name  string
	words []string
	freqs map[string]int
}

// NewWordList builds a source from a word->frequency map.
func NewWordList(name string, freqs map[string]int) *WordList {
	words := make([]string, 0, len(freqs))
	for w := range freqs {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if freqs[words[i]] != freqs[words[j]] {
			return freqs[words[i]] > freqs[words[j]]
		}
		return words[i] < words[j]
	})
	return &WordList{name: name, words: words, freqs: freqs}
}

// LoadWordList reads a plain text word list, one "word frequency" pair per
// line. Lines without a frequency default to 1; blank lines and lines
// starting with '#' are skipped.
func LoadWordList(name, path string) (*WordList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	freqs := make(map[string]int)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		freq := 1
		if len(fields) > 1 {
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				log.Debugf("wordlist %s: bad frequency on line %d: %v", path, lineNo, err)
			} else {
				freq = n
			}
		}
		freqs[fields[0]] = freq
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	log.Debugf("wordlist %s: loaded %d words", path, len(freqs))
	return NewWordList(name, freqs), nil
}

func (w *WordList) Name() string { return w.name }

// Candidates returns words starting with prefix, case-insensitively,
// highest frequency first. An empty prefix dumps the whole list.
func (w *WordList) Candidates(prefix string) ([]string, error) {
	lower := strings.ToLower(prefix)
	var out []string
	for _, word := range w.words {
		if strings.HasPrefix(strings.ToLower(word), lower) {
			out = append(out, word)
		}
	}
	return out, nil
}

func (w *WordList) Prefix(input string) (string, error) {
	return textutil.SymbolAt(input), nil
}

func (w *WordList) Doc(candidate string) (string, error) {
	freq, ok := w.freqs[candidate]
	if !ok {
		return "", nil
	}
	return fmt.Sprintf("%s (frequency %d)", candidate, freq), nil
}

func (w *WordList) Annotation(string) (string, error) { return "", nil }
