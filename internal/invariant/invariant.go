// Package invariant guards conditions that must hold on every valid input.
// A failing check means the engine itself is wrong, not the caller's input;
// see SPEC_FULL.md §7 (error kind 4).
package invariant

import "fmt"

// Check panics with a formatted message if cond is false. It exists to make
// internal-invariant panics searchable and distinguishable from ordinary
// programmer errors (nil dereferences, index overflows, ...).
func Check(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("varspan: internal invariant violated: "+format, args...))
	}
}
