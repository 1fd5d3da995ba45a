// Command inspect dumps the compiled variable-NFA for one or more patterns,
// the enumeration engine's equivalent of the teacher's scratch
// inspect_program.go (which dumped a regexp/syntax.Prog's instructions).
package main

import (
	"fmt"
	"os"

	"github.com/varspan/varspan/internal/automaton"
)

func main() {
	patterns := os.Args[1:]
	if len(patterns) == 0 {
		patterns = []string{
			`(?P<year>\d{4})-(?P<month>\d{2})-(?P<day>\d{2})`,
			`(?P<user>\w+)@(?P<domain>\w+\.\w+)`,
			`(?:(?P<a>x)|(?P<b>y))+`,
		}
	}

	for _, pattern := range patterns {
		fmt.Printf("\n=== Pattern: %s ===\n", pattern)

		result, err := automaton.Build(pattern)
		if err != nil {
			fmt.Printf("build error: %v\n", err)
			continue
		}

		a := result.Automaton
		fmt.Printf("Variables: %d\n", len(result.Variables))
		for name, v := range result.Variables {
			fmt.Printf("  %s (id=%d)\n", name, v.ID())
		}

		fmt.Printf("Automaton has %d states, initial=%d\n", a.NStates, a.Initial())
		for s := 0; s < a.NStates; s++ {
			final := ""
			if a.IsFinal(s) {
				final = " (final)"
			}
			fmt.Printf("  [%d]%s\n", s, final)
			for _, e := range a.Out(s) {
				lbl := a.Labels[e.LabelIdx]
				switch lbl.Kind {
				case automaton.LabelAtom:
					fmt.Printf("    -%s-> %d\n", lbl.Atom.String(), e.Target)
				case automaton.LabelMarker:
					fmt.Printf("    -%s(%s)-> %d\n", lbl.Marker.Tag, lbl.Marker.Var.Name(), e.Target)
				}
			}
		}

		fmt.Printf("Stats: states=%d edges=%d variables=%d nestedLoops=%v leftAnchored=%v rightAnchored=%v\n",
			result.Stats.NumStates, result.Stats.NumEdges, result.Stats.NumVariables,
			result.Stats.HasNestedLoops, result.Stats.LeftAnchored, result.Stats.RightAnchored)
	}
}
