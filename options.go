package rematch

// Options is a set of flags altering how a pattern is compiled and matched.
//
// Options is a bitmask: combine flags with bitwise or, test membership with
// Contains. The zero value is the default behavior (case-sensitive, pattern
// metacharacters active, anchors match the whole subject only).
//
// Example:
//
//	re := rematch.MustCompileWithOptions(`^item`, rematch.IgnoreCase|rematch.AnchorsMatchLines)
type Options uint8

const (
	// IgnoreCase makes matching case-insensitive.
	IgnoreCase Options = 1 << iota

	// IgnoreMetacharacters treats the whole pattern as a literal string:
	// metacharacters such as '.', '*', or '(' match themselves and declare
	// no capture groups.
	IgnoreMetacharacters

	// AnchorsMatchLines makes ^ and $ match at the start and end of every
	// line instead of only the start and end of the entire subject.
	//
	// Without this flag the engine's default applies: ^ matches only at
	// the very start of the subject, so `^foo` finds one match in
	// "foo\nbar\nfoo".
	AnchorsMatchLines

	// DotMatchesLineSeparators makes . match line separators as well.
	DotMatchesLineSeparators
)

// Contains reports whether every flag in o is also set in opts.
func (opts Options) Contains(o Options) bool {
	return opts&o == o
}

// Union returns the combination of opts and o. Equivalent to opts | o.
func (opts Options) Union(o Options) Options {
	return opts | o
}

// flagPrefix returns the engine flag group for opts, e.g. "(?im)",
// or "" when no engine flag is needed. IgnoreMetacharacters has no engine
// flag; it is applied by quoting the pattern before compilation.
func (opts Options) flagPrefix() string {
	var flags []byte
	if opts.Contains(IgnoreCase) {
		flags = append(flags, 'i')
	}
	if opts.Contains(AnchorsMatchLines) {
		flags = append(flags, 'm')
	}
	if opts.Contains(DotMatchesLineSeparators) {
		flags = append(flags, 's')
	}
	if len(flags) == 0 {
		return ""
	}
	return "(?" + string(flags) + ")"
}
