package enumerator

import (
	"sort"

	"github.com/varspan/varspan/internal/leveldag"
	"github.com/varspan/varspan/internal/mapping"
)

type frame struct {
	level   int
	gamma   []int
	partial []mapping.Event
}

// Enumerator produces every distinct Mapping a compiled pattern admits on a
// text, one at a time, via a pull-style Next(). It suspends between outputs
// at well-defined points (SPEC_FULL.md §4.5): a frame-stack entry per
// partially-resolved layer and a cursor into the in-progress per-level
// marker-split search.
type Enumerator struct {
	dag   *leveldag.Dag
	stack []frame

	curFrame frame
	cur      *perLevel
}

// New builds an Enumerator over an already-compiled level-DAG. The initial
// frame is the last layer of the DAG restricted to the automaton's
// accepting states.
func New(dag *leveldag.Dag) *Enumerator {
	last := dag.LastLevel()
	e := &Enumerator{dag: dag}
	e.stack = []frame{{level: last, gamma: dag.FinalVertices()}}
	return e
}

// Next returns the next Mapping, or ok=false once every mapping has been
// produced. A non-nil error indicates a contract violation while assembling
// a Mapping from accumulated marker events (SPEC_FULL.md §7 kind 4).
func (e *Enumerator) Next() (*mapping.Mapping, bool, error) {
	for {
		if e.cur == nil {
			if len(e.stack) == 0 {
				return nil, false, nil
			}
			e.curFrame = e.stack[len(e.stack)-1]
			e.stack = e.stack[:len(e.stack)-1]
			inLevel := levelSet(e.dag.Level(e.curFrame.level))
			e.cur = newPerLevel(e.dag.Automaton, inLevel, e.curFrame.gamma)
		}

		s, ok := e.cur.next()
		if !ok {
			e.cur = nil
			continue
		}
		if len(s.gamma) == 0 {
			continue
		}

		events := append(append([]mapping.Event(nil), e.curFrame.partial...), markerEvents(s.sPlus, e.curFrame.level)...)

		if e.curFrame.level == 0 && containsInitial(s.gamma, e.dag.Automaton.Initial()) {
			m, err := mapping.FromMarkers(e.dag.Text, e.dag.Index, events)
			if err != nil {
				return nil, false, err
			}
			return m, true, nil
		}

		// A vertex entered by a Marker edge has no Atom predecessor, so once
		// this level's markers are fixed it cannot lead further back; its
		// jump level (this very level) must not block the others' jump.
		var sources []int
		for _, v := range s.gamma {
			if len(e.dag.Automaton.RevAssign(v)) == 0 {
				sources = append(sources, v)
			}
		}
		if jl, gamma2, jumped := e.dag.Jump(e.curFrame.level, sources); jumped && len(gamma2) > 0 {
			e.stack = append(e.stack, frame{level: jl, gamma: gamma2, partial: events})
		}
	}
}

func levelSet(vertices []int) map[int]bool {
	m := make(map[int]bool, len(vertices))
	for _, v := range vertices {
		m[v] = true
	}
	return m
}

func containsInitial(gamma []int, initial int) bool {
	for _, v := range gamma {
		if v == initial {
			return true
		}
	}
	return false
}

func markerEvents(sPlus markerSet, level int) []mapping.Event {
	markers := make([]mapping.Marker, 0, len(sPlus))
	for m := range sPlus {
		markers = append(markers, m)
	}
	sort.Slice(markers, func(i, j int) bool { return markerOrder(markers[i]) < markerOrder(markers[j]) })

	events := make([]mapping.Event, 0, len(markers))
	for _, m := range markers {
		events = append(events, mapping.Event{Marker: m, Pos: level})
	}
	return events
}
