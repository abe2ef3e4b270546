package rematch

import (
	"strings"

	"github.com/coregx/ahocorasick"
)

// literalMatcher runs IgnoreMetacharacters patterns as a plain substring
// search through an Aho-Corasick automaton, bypassing the regex engine
// entirely. The automaton is immutable after build and safe for concurrent
// searches.
//
// The fast path is only selected for a non-empty needle with no other
// options set; anything else (case folding, line anchors) goes through the
// engine with the pattern quoted.
type literalMatcher struct {
	needle string
	auto   *ahocorasick.Automaton
}

// newLiteralMatcher builds the automaton for needle. A build failure is not
// fatal to compilation: the caller falls back to the engine strategy.
func newLiteralMatcher(needle string) (*literalMatcher, error) {
	builder := ahocorasick.NewBuilder()
	builder.AddPattern([]byte(needle))
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &literalMatcher{needle: needle, auto: auto}, nil
}

// isMatch reports whether the needle occurs in s.
func (l *literalMatcher) isMatch(s string) bool {
	return l.auto.IsMatch([]byte(s))
}

// first returns the leftmost occurrence of the needle in s as an engine
// record (byte index pair, no groups), or nil.
func (l *literalMatcher) first(s string) []int {
	m := l.auto.Find([]byte(s), 0)
	if m == nil {
		return nil
	}
	return []int{m.Start, m.End}
}

// all returns every non-overlapping occurrence of the needle in s, left to
// right, resuming after the end of each previous occurrence. The needle is
// never empty here, so every occurrence advances the scan.
func (l *literalMatcher) all(s string) [][]int {
	haystack := []byte(s)
	var records [][]int
	pos := 0
	for pos <= len(haystack) {
		m := l.auto.Find(haystack, pos)
		if m == nil {
			break
		}
		records = append(records, []int{m.Start, m.End})
		pos = m.End
	}
	return records
}

// replaceAll substitutes repl for every occurrence. Literal patterns
// declare no groups, so repl is taken verbatim.
func (l *literalMatcher) replaceAll(s, repl string) string {
	return strings.ReplaceAll(s, l.needle, repl)
}
