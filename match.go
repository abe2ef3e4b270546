package rematch

import (
	"fmt"
	"sort"

	"github.com/coregx/rematch/internal/chartext"
)

// CharRange is a half-open span [Start, End) over one subject string,
// measured in user-perceived characters (extended grapheme clusters), not
// bytes or runes. A CharRange is only meaningful against the string it was
// produced for.
type CharRange struct {
	Start int
	End   int
}

// Len returns the number of characters spanned by the range.
func (r CharRange) Len() int {
	return r.End - r.Start
}

// IsEmpty reports whether the range spans no characters, as produced by a
// zero-width match.
func (r CharRange) IsEmpty() bool {
	return r.Start == r.End
}

// String implements fmt.Stringer.
func (r CharRange) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// span is one translated location: byte offsets for slicing, character
// range for reporting. ok is false for a capture group that did not
// participate in the match.
type span struct {
	start, end int // byte offsets into the subject
	rng        CharRange
	ok         bool
}

// Match is a single successful application of a pattern to a subject
// string. A Match is immutable; substrings are sliced from the subject on
// access.
//
// Example:
//
//	re := rematch.MustCompile(`(\w+)@(\w+)`)
//	m := re.FirstMatch("mail user@example today")
//	m.String()     // "user@example"
//	m.Capture(0)   // "user", true
//	m.Capture(1)   // "example", true
//	m.Range()      // character positions of the whole match
type Match struct {
	subject string
	whole   span
	groups  []span
}

// Capture is one capture group's outcome within a Match. When Present is
// false the group did not participate in the match and Text and Range are
// meaningless.
type Capture struct {
	Text    string
	Range   CharRange
	Present bool
}

// newMatch builds a Match from an engine record: index pairs in the stdlib
// submatch convention (idx[0:2] is the whole match, idx[2*i+2:2*i+4] is
// group i, -1 for a group that did not participate), all in bytes.
//
// Every distinct boundary is translated through tr in ascending order, so
// one Match costs at most one pass over the subject regardless of group
// count. The translator must have been created for the same subject string.
func newMatch(tr *chartext.Translator, subject string, idx []int) *Match {
	offsets := make([]int, 0, len(idx))
	for _, off := range idx {
		if off >= 0 {
			offsets = append(offsets, off)
		}
	}
	sort.Ints(offsets)

	chars := make(map[int]int, len(offsets))
	for _, off := range offsets {
		chars[off] = tr.CharOffset(off)
	}

	m := &Match{
		subject: subject,
		whole: span{
			start: idx[0],
			end:   idx[1],
			rng:   CharRange{Start: chars[idx[0]], End: chars[idx[1]]},
			ok:    true,
		},
	}
	if n := len(idx)/2 - 1; n > 0 {
		m.groups = make([]span, n)
		for i := 0; i < n; i++ {
			lo, hi := idx[2*i+2], idx[2*i+3]
			if lo < 0 {
				continue
			}
			m.groups[i] = span{
				start: lo,
				end:   hi,
				rng:   CharRange{Start: chars[lo], End: chars[hi]},
				ok:    true,
			}
		}
	}
	return m
}

// String returns the matched substring.
func (m *Match) String() string {
	return m.subject[m.whole.start:m.whole.end]
}

// Range returns the character range of the whole match within the subject.
func (m *Match) Range() CharRange {
	return m.whole.rng
}

// NumCaptures returns the number of capture groups the pattern declares,
// participating or not.
func (m *Match) NumCaptures() int {
	return len(m.groups)
}

// Capture returns the substring bound to capture group i (0 is the first
// declared group) and whether the group participated in the match.
// Capture panics if i is out of range.
func (m *Match) Capture(i int) (string, bool) {
	g := m.groups[i]
	if !g.ok {
		return "", false
	}
	return m.subject[g.start:g.end], true
}

// CaptureRange returns the character range bound to capture group i and
// whether the group participated in the match.
// CaptureRange panics if i is out of range.
func (m *Match) CaptureRange(i int) (CharRange, bool) {
	g := m.groups[i]
	if !g.ok {
		return CharRange{}, false
	}
	return g.rng, true
}

// Captures returns all capture group outcomes in declaration order (first
// opening parenthesis = index 0). The returned slice is freshly allocated
// on every call; the Match itself is never mutated.
func (m *Match) Captures() []Capture {
	caps := make([]Capture, len(m.groups))
	for i, g := range m.groups {
		if !g.ok {
			continue
		}
		caps[i] = Capture{
			Text:    m.subject[g.start:g.end],
			Range:   g.rng,
			Present: true,
		}
	}
	return caps
}
