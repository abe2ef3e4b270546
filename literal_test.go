package rematch

import (
	"strings"
	"testing"
)

func TestLiteralStrategySelected(t *testing.T) {
	re := MustCompileWithOptions(`a.c`, IgnoreMetacharacters)
	if re.literal == nil {
		t.Fatal("IgnoreMetacharacters pattern did not take the literal strategy")
	}
	if re.engine != nil {
		t.Error("literal strategy still holds an engine")
	}

	// Any additional option forces the engine path.
	ci := MustCompileWithOptions(`a.c`, IgnoreCase|IgnoreMetacharacters)
	if ci.literal != nil {
		t.Error("engine-path pattern took the literal strategy")
	}
	if ci.engine == nil {
		t.Error("engine-path pattern has no engine")
	}

	// The empty pattern has no needle to index; it compiles through the
	// engine and matches zero-width everywhere.
	empty := MustCompileWithOptions(``, IgnoreMetacharacters)
	if empty.literal != nil {
		t.Error("empty literal pattern took the automaton strategy")
	}
	if !empty.MatchString("anything") {
		t.Error("empty literal pattern did not match")
	}
}

// The literal bypass must be indistinguishable from compiling the quoted
// pattern through the engine.
func TestLiteralEngineParity(t *testing.T) {
	tests := []struct {
		needle  string
		subject string
	}{
		{"a.c", "xa.cya.cz"},
		{"a.c", "abc axc"},
		{"(", "f(x) = g(y)"},
		{"$^*", "literally $^* here"},
		{"aa", "aaaa"},
		{"∞", "x∞y∞"},
		{"needle", "no hay"},
	}

	for _, tt := range tests {
		t.Run(tt.needle, func(t *testing.T) {
			lit := MustCompileWithOptions(tt.needle, IgnoreMetacharacters)
			ref := MustCompileWithOptions(tt.needle, IgnoreMetacharacters|DotMatchesLineSeparators)
			if lit.literal == nil || ref.engine == nil {
				t.Fatal("strategy selection did not diverge as expected")
			}

			if got, want := lit.MatchString(tt.subject), ref.MatchString(tt.subject); got != want {
				t.Errorf("MatchString = %v, engine path %v", got, want)
			}
			if got, want := lit.Count(tt.subject), ref.Count(tt.subject); got != want {
				t.Errorf("Count = %d, engine path %d", got, want)
			}

			var litAll, refAll []CharRange
			for m := range lit.AllMatches(tt.subject) {
				litAll = append(litAll, m.Range())
			}
			for m := range ref.AllMatches(tt.subject) {
				refAll = append(refAll, m.Range())
			}
			if len(litAll) != len(refAll) {
				t.Fatalf("AllMatches ranges %v, engine path %v", litAll, refAll)
			}
			for i := range litAll {
				if litAll[i] != refAll[i] {
					t.Errorf("range %d = %v, engine path %v", i, litAll[i], refAll[i])
				}
			}
		})
	}
}

func TestLiteralReplace(t *testing.T) {
	re := MustCompileWithOptions(`a.c`, IgnoreMetacharacters)
	if got := re.ReplaceAll("a.c abc a.c", "#"); got != "# abc #" {
		t.Errorf("ReplaceAll = %q, want %q", got, "# abc #")
	}
	if got := re.ReplaceFirst("a.c abc a.c", "#"); got != "# abc a.c" {
		t.Errorf("ReplaceFirst = %q, want %q", got, "# abc a.c")
	}
	// Literal path substitutes the template verbatim: no group expansion.
	if got := re.ReplaceAll("a.c", "$1"); got != "$1" {
		t.Errorf("ReplaceAll template = %q, want %q", got, "$1")
	}
}

func TestLiteralNonOverlapping(t *testing.T) {
	re := MustCompileWithOptions(`aa`, IgnoreMetacharacters)
	if got := re.Count("aaaa"); got != strings.Count("aaaa", "aa") {
		t.Errorf("Count(\"aaaa\") = %d, want %d", got, strings.Count("aaaa", "aa"))
	}
	m := re.FirstMatch("baaaab")
	if m == nil || m.String() != "aa" {
		t.Fatalf("FirstMatch = %v, want \"aa\"", m)
	}
	if got := m.Range(); (got != CharRange{Start: 1, End: 3}) {
		t.Errorf("Range() = %v, want [1,3)", got)
	}
}
