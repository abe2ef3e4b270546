// Package rematch provides pattern matching over text with
// character-correct match positions.
//
// A pattern string plus Options compiles into a reusable Regex; applying it
// to a subject string tests for a match, extracts the matched substring, and
// extracts the substrings bound to capture groups. Match positions are
// reported as CharRange values counted in user-perceived characters
// (extended grapheme clusters), so results stay correct when the subject
// contains combining marks, symbols outside the basic multilingual plane, or
// any other multi-byte text. The regular-expression execution itself is
// delegated to the platform engine; rematch is the wrapper contract around
// it.
//
// Basic usage:
//
//	re, err := rematch.Compile(`(\d+)-(\d+)`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	m := re.FirstMatch("pages 10-42")
//	m.String()     // "10-42"
//	m.Capture(1)   // "42", true
//
// Iterating all matches:
//
//	re := rematch.MustCompile(`\w+`)
//	for m := range re.AllMatches("a é́ 𝄞") {
//	    fmt.Println(m.Range(), m.String())
//	}
//
// Failed compilation returns a nil Regex plus a *CompileError; call sites
// using the predicate sugar can instead inspect LastError on the same
// goroutine. See PatternMatches and LastMatch for the convenience path.
package rematch

import (
	"iter"
	"regexp"

	"github.com/coregx/rematch/internal/chartext"
)

// Regex is a compiled pattern together with its Options.
//
// A Regex is immutable and safe for concurrent use by multiple goroutines.
//
// Example:
//
//	re := rematch.MustCompile(`hello`)
//	if re.MatchString("hello world") {
//	    println("matched!")
//	}
type Regex struct {
	pattern string
	options Options

	// Exactly one strategy is set: engine for regex execution, literal
	// for the Aho-Corasick substring bypass.
	engine  *regexp.Regexp
	literal *literalMatcher
}

// Compile compiles a pattern with default (empty) Options.
//
// Pattern syntax is the platform engine's (RE2). On failure Compile returns
// a nil Regex and a *CompileError, and records the error in the calling
// goroutine's last-error slot; on success it clears that slot.
//
// Example:
//
//	re, err := rematch.Compile(`\d{3}-\d{4}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithOptions(pattern, 0)
}

// CompileWithOptions compiles a pattern with the given Options.
//
// Example:
//
//	re, err := rematch.CompileWithOptions(`^\w+`, rematch.AnchorsMatchLines)
func CompileWithOptions(pattern string, opts Options) (*Regex, error) {
	re, err := compile(pattern, opts)
	if err != nil {
		cerr := &CompileError{Pattern: pattern, Err: err}
		recordLastError(cerr)
		return nil, cerr
	}
	clearLastError()
	return re, nil
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
// It simplifies safe initialization of package-level variables holding
// compiled patterns.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("rematch: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// MustCompileWithOptions is like CompileWithOptions but panics on failure.
func MustCompileWithOptions(pattern string, opts Options) *Regex {
	re, err := CompileWithOptions(pattern, opts)
	if err != nil {
		panic("rematch: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// compile selects the strategy for pattern+opts. Literal patterns take the
// Aho-Corasick bypass; everything else goes to the engine with the options
// translated flag-by-flag. An automaton build failure falls back to the
// engine rather than failing compilation.
func compile(pattern string, opts Options) (*Regex, error) {
	if opts == IgnoreMetacharacters && pattern != "" {
		if lit, err := newLiteralMatcher(pattern); err == nil {
			return &Regex{pattern: pattern, options: opts, literal: lit}, nil
		}
	}

	expr := pattern
	if opts.Contains(IgnoreMetacharacters) {
		expr = regexp.QuoteMeta(expr)
	}
	expr = opts.flagPrefix() + expr

	engine, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &Regex{pattern: pattern, options: opts, engine: engine}, nil
}

// String returns the source text the pattern was compiled from.
func (r *Regex) String() string {
	return r.pattern
}

// Options returns the Options the pattern was compiled with.
func (r *Regex) Options() Options {
	return r.options
}

// NumCaptures returns the number of capture groups the pattern declares.
// Literal patterns declare none.
func (r *Regex) NumCaptures() int {
	if r.literal != nil {
		return 0
	}
	return r.engine.NumSubexp()
}

// MatchString reports whether the subject contains any match of the
// pattern.
//
// Example:
//
//	re := rematch.MustCompile(`\d+`)
//	re.MatchString("hello 123") // true
func (r *Regex) MatchString(s string) bool {
	if r.literal != nil {
		return r.literal.isMatch(s)
	}
	return r.engine.MatchString(s)
}

// FirstMatch returns the leftmost match of the pattern in the subject, or
// nil if the subject contains no match.
//
// Example:
//
//	re := rematch.MustCompile(`\d+`)
//	m := re.FirstMatch("age: 42")
//	m.String() // "42"
func (r *Regex) FirstMatch(s string) *Match {
	raw := r.firstRaw(s)
	if raw == nil {
		return nil
	}
	return newMatch(chartext.NewTranslator(s), s, raw)
}

// AllMatches returns a sequence of every non-overlapping match of the
// pattern in the subject, left to right. The search resumes immediately
// after the end of each previous match, and a zero-length match always
// advances the scan, so the sequence is finite. The sequence is restartable:
// ranging over it again re-runs the search.
//
// Example:
//
//	re := rematch.MustCompile(`\d+`)
//	for m := range re.AllMatches("1 22 333") {
//	    fmt.Println(m.String())
//	}
func (r *Regex) AllMatches(s string) iter.Seq[*Match] {
	return func(yield func(*Match) bool) {
		tr := chartext.NewTranslator(s)
		for _, raw := range r.allRaw(s) {
			if !yield(newMatch(tr, s, raw)) {
				return
			}
		}
	}
}

// Count returns the number of non-overlapping matches of the pattern in
// the subject.
func (r *Regex) Count(s string) int {
	return len(r.allRaw(s))
}

// ReplaceAll returns the subject with every match of the pattern replaced
// by template. On the engine path, $1-style references in template expand
// to the corresponding captures; on the literal path the pattern declares
// no groups and template is substituted verbatim.
//
// Example:
//
//	re := rematch.MustCompile(`(\w+)@\w+`)
//	re.ReplaceAll("user@example", "$1") // "user"
func (r *Regex) ReplaceAll(s, template string) string {
	if r.literal != nil {
		return r.literal.replaceAll(s, template)
	}
	return r.engine.ReplaceAllString(s, template)
}

// ReplaceFirst returns the subject with only the leftmost match of the
// pattern replaced by template, under the same template rules as
// ReplaceAll. The subject is returned unchanged when there is no match.
func (r *Regex) ReplaceFirst(s, template string) string {
	raw := r.firstRaw(s)
	if raw == nil {
		return s
	}
	if r.literal != nil {
		return s[:raw[0]] + template + s[raw[1]:]
	}
	expanded := r.engine.ExpandString(nil, template, s, raw)
	return s[:raw[0]] + string(expanded) + s[raw[1]:]
}

// firstRaw returns the leftmost engine record (byte index pairs, stdlib
// submatch convention) or nil.
func (r *Regex) firstRaw(s string) []int {
	if r.literal != nil {
		return r.literal.first(s)
	}
	return r.engine.FindStringSubmatchIndex(s)
}

// allRaw returns every non-overlapping engine record in subject order.
// The engine path delegates iteration to the engine itself, which resumes
// after each match's end and forces progress on zero-length matches; the
// literal path implements the same rule with a needle that is never
// zero-length.
func (r *Regex) allRaw(s string) [][]int {
	if r.literal != nil {
		return r.literal.all(s)
	}
	return r.engine.FindAllStringSubmatchIndex(s, -1)
}
