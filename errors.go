package rematch

import "fmt"

// CompileError describes a pattern that could not be compiled.
//
// It wraps the engine's error and records the original pattern text (before
// option preprocessing), so callers see the pattern they wrote rather than
// the expression handed to the engine.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("rematch: cannot compile pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying engine error.
func (e *CompileError) Unwrap() error {
	return e.Err
}
