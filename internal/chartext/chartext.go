// Package chartext translates byte offsets within a string into character
// offsets counted in extended grapheme clusters (user-perceived characters).
//
// Byte offsets are what a matching engine reports; character offsets are what
// a caller can show to a user or use to index the text as they perceive it.
// The two diverge whenever the text contains multi-byte UTF-8 sequences,
// combining marks (a base character plus accents is one cluster), or code
// points outside the basic multilingual plane.
package chartext

import (
	"fmt"

	"github.com/rivo/uniseg"
)

// Translator maps byte offsets in one subject string to character offsets.
//
// The translator keeps a cursor over the subject's grapheme clusters, so a
// sequence of offsets queried in ascending order is translated in a single
// pass over the string. Querying a smaller offset than the previous one
// restarts the scan from the beginning; the result is still correct, only
// slower. A Translator is tied to exactly one subject string and is not safe
// for concurrent use.
type Translator struct {
	subject string

	rest    string // unscanned tail of subject
	state   int    // uniseg grapheme parser state
	byteOff int    // byte offset where the next unscanned cluster starts
	charOff int    // clusters fully consumed so far
}

// NewTranslator returns a Translator over subject.
func NewTranslator(subject string) *Translator {
	t := &Translator{subject: subject}
	t.reset()
	return t
}

func (t *Translator) reset() {
	t.rest = t.subject
	t.state = -1
	t.byteOff = 0
	t.charOff = 0
}

// CharOffset returns the number of grapheme clusters that begin strictly
// before byte offset off in the subject.
//
// Offset 0 always translates to 0, and len(subject) translates to the
// subject's total cluster count. An offset falling inside a cluster (the
// engine matches runes, clusters may span several) counts the cluster it
// splits.
//
// CharOffset panics if off is outside [0, len(subject)]: an out-of-range
// offset means the record being translated was produced against a different
// string, which is caller misuse, not a data condition.
func (t *Translator) CharOffset(off int) int {
	if off < 0 || off > len(t.subject) {
		panic(fmt.Sprintf("chartext: byte offset %d out of range for subject of %d bytes", off, len(t.subject)))
	}
	if off < t.byteOff {
		t.reset()
	}
	for t.byteOff < off && len(t.rest) > 0 {
		var cluster string
		cluster, t.rest, _, t.state = uniseg.FirstGraphemeClusterInString(t.rest, t.state)
		t.byteOff += len(cluster)
		t.charOff++
	}
	return t.charOff
}
