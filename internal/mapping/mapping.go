package mapping

import (
	"fmt"
	"sort"
	"strings"
)

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start int
	End   int
}

// Event is a (marker, code-point position) pair, the unit the enumerator
// accumulates along a run before assembling a Mapping (SPEC_FULL.md §4.6).
type Event struct {
	Marker Marker
	Pos    int
}

// Mapping is a total function from a finite set of Variables to byte Spans
// over one text. Two Mappings are equal iff their variable→span assignments
// are identical; order of assembly does not matter.
type Mapping struct {
	text  string
	spans map[int]entry
}

type entry struct {
	variable *Variable
	span     Span
}

// FromMarkers assembles a Mapping from an ordered list of (marker, position)
// events, converting code-point positions to byte offsets via index. It
// returns an error if two events of the same kind bind the same variable, or
// if a resulting span has start > end — both are contract violations that
// should never occur on events produced by the enumerator or the naive
// reference (SPEC_FULL.md §7 kind 4), but are reported as errors here rather
// than panics because FromMarkers is also reachable from test fixtures that
// deliberately feed malformed event lists.
func FromMarkers(text string, index *CodepointIndex, events []Event) (*Mapping, error) {
	type pending struct {
		start, end       int
		hasStart, hasEnd bool
	}
	byVar := make(map[int]pending)
	vars := make(map[int]*Variable)

	for _, ev := range events {
		id := ev.Marker.Var.ID()
		vars[id] = ev.Marker.Var
		p := byVar[id]

		switch ev.Marker.Tag {
		case Open:
			if p.hasStart {
				return nil, fmt.Errorf("mapping: variable %q assigned twice (open at %d and %d)", ev.Marker.Var.Name(), p.start, ev.Pos)
			}
			p.start, p.hasStart = ev.Pos, true
		case Close:
			if p.hasEnd {
				return nil, fmt.Errorf("mapping: variable %q assigned twice (close at %d and %d)", ev.Marker.Var.Name(), p.end, ev.Pos)
			}
			p.end, p.hasEnd = ev.Pos, true
		}
		byVar[id] = p
	}

	spans := make(map[int]entry, len(byVar))
	for id, p := range byVar {
		if !p.hasStart || !p.hasEnd {
			// A variable with only one of its two markers bound never
			// happened on a witnessed run; drop it rather than error,
			// matching "variables with no span are rejected" (§8).
			continue
		}
		if p.start > p.end {
			return nil, fmt.Errorf("mapping: invalid span ordering for %q: start=%d end=%d", vars[id].Name(), p.start, p.end)
		}
		spans[id] = entry{
			variable: vars[id],
			span:     Span{Start: index.ByteOffset(p.start), End: index.ByteOffset(p.end)},
		}
	}

	return &Mapping{text: text, spans: spans}, nil
}

// Get returns the span bound to the named variable, if any.
func (m *Mapping) Get(name string) (Span, bool) {
	for _, e := range m.spans {
		if e.variable.Name() == name {
			return e.span, true
		}
	}
	return Span{}, false
}

// Value returns the substring bound to the named variable, if any.
func (m *Mapping) Value(name string) (string, bool) {
	span, ok := m.Get(name)
	if !ok {
		return "", false
	}
	return m.text[span.Start:span.End], true
}

// Group is one (name, span) pair produced by IterGroups.
type Group struct {
	Name string
	Span Span
}

// IterGroups returns all (name, span) pairs, ordered by variable id for
// determinism across runs.
func (m *Mapping) IterGroups() []Group {
	ids := make([]int, 0, len(m.spans))
	for id := range m.spans {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	groups := make([]Group, 0, len(ids))
	for _, id := range ids {
		e := m.spans[id]
		groups = append(groups, Group{Name: e.variable.Name(), Span: e.span})
	}
	return groups
}

// Equal reports whether two Mappings assign identical variable→span pairs.
func (m *Mapping) Equal(other *Mapping) bool {
	if len(m.spans) != len(other.spans) {
		return false
	}
	for id, e := range m.spans {
		oe, ok := other.spans[id]
		if !ok || oe.span != e.span {
			return false
		}
	}
	return true
}

// Key returns a canonical string representation suitable for de-duplicating
// Mappings in a set (order-independent equality, order-dependent string).
func (m *Mapping) Key() string {
	var sb strings.Builder
	for _, g := range m.IterGroups() {
		fmt.Fprintf(&sb, "%s:%d,%d;", g.Name, g.Span.Start, g.Span.End)
	}
	return sb.String()
}

func (m *Mapping) String() string {
	var sb strings.Builder
	for _, g := range m.IterGroups() {
		fmt.Fprintf(&sb, "%s:%q ", g.Name, m.text[g.Span.Start:g.Span.End])
	}
	return strings.TrimRight(sb.String(), " ")
}
