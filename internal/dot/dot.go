// Package dot renders a compiled variable-NFA as a Graphviz dot file, for
// visual inspection of the Glushkov construction. No Graphviz-authoring
// library is available, so this uses text/template, the same approach
// reached for elsewhere for generated-file writers (e.g. the curated
// benchmark generator).
package dot

import (
	"os"
	"sort"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/varspan/varspan/internal/automaton"
	"github.com/varspan/varspan/internal/mapping"
)

type edgeView struct {
	Source int
	Target int
	Label  string
	Style  string
}

type stateView struct {
	ID      int
	Shape   string
	Initial bool
}

type graphView struct {
	States []stateView
	Edges  []edgeView
}

var dotTemplate = template.Must(template.New("automaton").Parse(
	`digraph automaton {
	rankdir=LR;
	node [fontname="monospace"];
	edge [fontname="monospace"];
{{range .States}}	{{.ID}} [shape={{.Shape}}{{if .Initial}},peripheries=2{{end}}];
{{end}}{{range .Edges}}	{{.Source}} -> {{.Target}} [label="{{.Label}}"{{if .Style}},style={{.Style}}{{end}}];
{{end}}}
`))

// WriteFile renders result's automaton to path as a Graphviz dot file.
func WriteFile(path string, result *automaton.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, result)
}

// Write renders result's automaton as a Graphviz dot file to w.
func Write(w interface{ Write([]byte) (int, error) }, result *automaton.Result) error {
	view := buildGraphView(result.Automaton)
	var sb strings.Builder
	if err := dotTemplate.Execute(&sb, view); err != nil {
		return err
	}
	_, err := w.Write([]byte(sb.String()))
	return err
}

func buildGraphView(a *automaton.Automaton) graphView {
	view := graphView{}
	for s := 0; s < a.NStates; s++ {
		shape := "circle"
		if a.IsFinal(s) {
			shape = "doublecircle"
		}
		view.States = append(view.States, stateView{ID: s, Shape: shape, Initial: s == a.Initial()})
	}

	for s := 0; s < a.NStates; s++ {
		edges := a.Out(s)
		sorted := make([]automaton.Edge, len(edges))
		copy(sorted, edges)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Target < sorted[j].Target })
		for _, e := range sorted {
			lbl := a.Labels[e.LabelIdx]
			view.Edges = append(view.Edges, edgeView{
				Source: e.Source,
				Target: e.Target,
				Label:  labelText(lbl),
				Style:  labelStyle(lbl),
			})
		}
	}
	return view
}

// maxLabelLen is the longest edge label rendered verbatim; longer labels are
// shown as "[...]".
const maxLabelLen = 10

func labelText(lbl automaton.Label) string {
	text := lbl.Atom.String()
	if lbl.Kind == automaton.LabelMarker {
		text = markerText(lbl.Marker)
	}
	if utf8.RuneCountInString(text) > maxLabelLen {
		return "[...]"
	}
	return text
}

func labelStyle(lbl automaton.Label) string {
	if lbl.Kind == automaton.LabelMarker {
		return "dashed"
	}
	return ""
}

func markerText(m mapping.Marker) string {
	if m.Tag == mapping.Open {
		return "(" + m.Var.Name()
	}
	return m.Var.Name() + ")"
}
