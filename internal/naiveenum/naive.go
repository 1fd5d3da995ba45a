// Package naiveenum is a brute-force reference enumerator used only as a
// test oracle (SPEC_FULL.md §4.7): it simulates the variable-NFA over the
// text by depth-first search, without any jump index or level-DAG, and
// offers no duplicate-freedom guarantee of its own (callers de-duplicate via
// mapping.Mapping.Key). Grounded directly on
// original_source/src/mapping/naive.rs's NaiveEnum. The main enumerator
// (internal/enumerator) must never import this package.
package naiveenum

import (
	"github.com/varspan/varspan/internal/automaton"
	"github.com/varspan/varspan/internal/mapping"
)

type frame struct {
	state   int
	cursor  int
	assigns []mapping.Event
}

// Enum is the brute-force enumerator: a DFS over (state, cursor,
// accumulated assignments) frames, consuming one code point per Atom edge
// and recording a (marker, cursor) event per Marker edge.
type Enum struct {
	automaton *automaton.Automaton
	text      string
	index     *mapping.CodepointIndex
	stack     []frame
}

// New starts a new brute-force search from the automaton's initial state at
// the beginning of text.
func New(a *automaton.Automaton, text string) *Enum {
	return &Enum{
		automaton: a,
		text:      text,
		index:     mapping.NewCodepointIndex(text),
		stack:     []frame{{state: a.Initial(), cursor: 0}},
	}
}

// Next returns the next Mapping in DFS order, which may repeat: the naive
// enumerator offers no de-duplication guarantee (matching
// original_source's documented behavior).
func (e *Enum) Next() (*mapping.Mapping, bool, error) {
	for len(e.stack) > 0 {
		f := e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]

		atEnd := f.cursor >= e.index.Len()
		var curChar rune
		if !atEnd {
			curChar = e.index.RuneAt(f.cursor)
		}

		for _, edge := range e.automaton.Out(f.state) {
			lbl := e.automaton.Labels[edge.LabelIdx]
			switch lbl.Kind {
			case automaton.LabelAtom:
				if atEnd || !lbl.Atom.Matches(curChar) {
					continue
				}
				e.stack = append(e.stack, frame{
					state:   edge.Target,
					cursor:  f.cursor + 1,
					assigns: append([]mapping.Event(nil), f.assigns...),
				})
			case automaton.LabelMarker:
				events := append(append([]mapping.Event(nil), f.assigns...), mapping.Event{
					Marker: lbl.Marker,
					Pos:    f.cursor,
				})
				e.stack = append(e.stack, frame{
					state:   edge.Target,
					cursor:  f.cursor,
					assigns: events,
				})
			}
		}

		if atEnd && e.automaton.IsFinal(f.state) {
			m, err := mapping.FromMarkers(e.text, e.index, f.assigns)
			if err != nil {
				return nil, false, err
			}
			return m, true, nil
		}
	}
	return nil, false, nil
}

// All drains the enumerator, de-duplicating by Mapping.Key so callers get
// the same set semantics the engine itself guarantees.
func All(a *automaton.Automaton, text string) ([]*mapping.Mapping, error) {
	enum := New(a, text)
	seen := make(map[string]bool)
	var out []*mapping.Mapping
	for {
		m, ok, err := enum.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		key := m.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, m)
	}
}
