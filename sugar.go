package rematch

import "github.com/coregx/rematch/internal/threadlocal"

// Keys for the per-goroutine convenience slots. The slots live in
// goroutine-scoped storage, so concurrent callers never observe each
// other's state.
const (
	lastErrorKey = "rematch.lastError"
	lastMatchKey = "rematch.lastMatch"
)

// PatternMatches reports whether re matches the subject, recording the
// outcome in the calling goroutine's last-match slot: a hit stores the
// match, a miss clears the slot. A nil re (a compile that failed softly)
// is a miss.
//
// Example:
//
//	if rematch.PatternMatches(re, input) {
//	    m := rematch.LastMatch()
//	    fmt.Println(m.String())
//	}
func PatternMatches(re *Regex, s string) bool {
	if re == nil {
		threadlocal.Delete(lastMatchKey)
		return false
	}
	m := re.FirstMatch(s)
	if m == nil {
		threadlocal.Delete(lastMatchKey)
		return false
	}
	threadlocal.Set(lastMatchKey, m)
	return true
}

// StringMatches is the argument-order twin of PatternMatches, for call
// sites that read better subject-first. The two are semantically
// identical, side effects included.
func StringMatches(s string, re *Regex) bool {
	return PatternMatches(re, s)
}

// LastMatch returns the match recorded by the most recent PatternMatches
// or StringMatches call on this goroutine, or nil if that call found no
// match (or no such call has been made).
func LastMatch() *Match {
	m, _ := threadlocal.Get[*Match](lastMatchKey)
	return m
}

// LastError returns the error recorded by the most recent failed compile
// on this goroutine, or nil if the most recent compile succeeded (or no
// compile has been attempted).
func LastError() error {
	err, _ := threadlocal.Get[*CompileError](lastErrorKey)
	if err == nil {
		return nil
	}
	return err
}

func recordLastError(err *CompileError) {
	threadlocal.Set(lastErrorKey, err)
}

func clearLastError() {
	threadlocal.Delete(lastErrorKey)
}
