package automaton

import "github.com/varspan/varspan/internal/mapping"

// LabelKind distinguishes the two closed variants of Label. A tagged
// variant is used in preference to an interface, following the teacher
// repository's preference for concrete sum types over dynamic dispatch in
// its own instruction/label encodings (internal/compiler/instructions.go).
type LabelKind uint8

const (
	// LabelAtom is a consuming label: matches a character of the input.
	LabelAtom LabelKind = iota
	// LabelMarker is a non-consuming (ε) label: opens or closes a variable.
	LabelMarker
)

// Label annotates one NFA edge: either an Atom (consuming) or a Marker
// (ε/assignation), per SPEC_FULL.md §3. Labels are owned by the Automaton's
// label table and referenced by index from edges; they are immutable once
// created.
type Label struct {
	Kind   LabelKind
	Atom   Atom
	Marker mapping.Marker
}

func atomLabel(a Atom) Label {
	return Label{Kind: LabelAtom, Atom: a}
}

func markerLabel(m mapping.Marker) Label {
	return Label{Kind: LabelMarker, Marker: m}
}
