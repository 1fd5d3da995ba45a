package automaton

import "github.com/varspan/varspan/internal/mapping"

// Edge is one (source, label, target) triple of the variable-NFA.
// SPEC_FULL.md §3 requires edges be stored as index triples rather than a
// pointer graph, since the automaton is cyclic by construction (closures).
type Edge struct {
	Source   int
	Target   int
	LabelIdx int
}

// Automaton is the variable-NFA of SPEC_FULL.md §3: a Glushkov automaton
// extended with Marker ε-edges for named capture groups. State 0 is always
// the initial state.
type Automaton struct {
	NStates int
	Labels  []Label
	edges   []Edge
	finals  []bool

	adj    [][]Edge // outgoing edges, indexed by source state
	assign [][]Edge // outgoing Marker edges only, indexed by source state
	revAsg [][]Edge // incoming Marker edges only, indexed by target state

	closeAssign []map[int]bool // strict marker-reachable descendants per state

	charCache map[rune][][]int // AdjForChar memo, keyed by rune
}

func newAutomaton(nStates int, labels []Label) *Automaton {
	return &Automaton{
		NStates:   nStates,
		Labels:    labels,
		finals:    make([]bool, nStates),
		charCache: make(map[rune][][]int),
	}
}

func (a *Automaton) addEdge(source, labelIdx, target int) {
	a.edges = append(a.edges, Edge{Source: source, Target: target, LabelIdx: labelIdx})
}

// finalizeIndices builds the derived adjacency, marker-assignment, and
// marker-closure indices once all edges have been added. Must be called
// exactly once, after construction and before any query method is used.
func (a *Automaton) finalizeIndices() {
	a.adj = make([][]Edge, a.NStates)
	a.assign = make([][]Edge, a.NStates)
	a.revAsg = make([][]Edge, a.NStates)

	for _, e := range a.edges {
		a.adj[e.Source] = append(a.adj[e.Source], e)
		if a.Labels[e.LabelIdx].Kind == LabelMarker {
			a.assign[e.Source] = append(a.assign[e.Source], e)
			a.revAsg[e.Target] = append(a.revAsg[e.Target], e)
		}
	}

	a.closeAssign = make([]map[int]bool, a.NStates)
	for s := 0; s < a.NStates; s++ {
		a.closeAssign[s] = a.bfsMarkerClosure(s)
	}
}

func (a *Automaton) bfsMarkerClosure(start int) map[int]bool {
	seen := map[int]bool{}
	queue := []int{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, e := range a.assign[u] {
			if !seen[e.Target] {
				seen[e.Target] = true
				queue = append(queue, e.Target)
			}
		}
	}
	delete(seen, start)
	return seen
}

// Initial is always state 0.
func (a *Automaton) Initial() int { return 0 }

// IsFinal reports whether s accepts (belongs to D, or the empty word is
// accepted and s is the initial state).
func (a *Automaton) IsFinal(s int) bool { return a.finals[s] }

// Out returns all outgoing edges of s (both Atom and Marker labels).
func (a *Automaton) Out(s int) []Edge { return a.adj[s] }

// Assign returns the outgoing Marker edges of s.
func (a *Automaton) Assign(s int) []Edge { return a.assign[s] }

// RevAssign returns the incoming Marker edges into s.
func (a *Automaton) RevAssign(s int) []Edge { return a.revAsg[s] }

// CloseAssign returns the set of states strictly reachable from s by
// following only Marker edges (s itself excluded), used by the level-DAG
// builder to extend each level with its marker closure.
func (a *Automaton) CloseAssign(s int) map[int]bool { return a.closeAssign[s] }

// AdjForChar returns, for every source state, the list of target states
// reachable by consuming rune c, building and caching the slice lazily on
// first use per distinct rune (SPEC_FULL.md §5: "per-character cache").
func (a *Automaton) AdjForChar(c rune) [][]int {
	if cached, ok := a.charCache[c]; ok {
		return cached
	}
	out := make([][]int, a.NStates)
	for s := 0; s < a.NStates; s++ {
		for _, e := range a.adj[s] {
			lbl := a.Labels[e.LabelIdx]
			if lbl.Kind == LabelAtom && lbl.Atom.Matches(c) {
				out[s] = append(out[s], e.Target)
			}
		}
	}
	a.charCache[c] = out
	return out
}

// Marker returns the marker label carried by a Marker edge.
func (a *Automaton) Marker(e Edge) mapping.Marker {
	return a.Labels[e.LabelIdx].Marker
}

// FromTable reconstructs an Automaton directly from its edge and label
// tables, skipping Glushkov construction entirely. This is what code
// generated by internal/codegen calls: the variable-NFA for a fixed pattern
// is computed once, ahead of time, and baked into a Go source file as plain
// data, so a program that only ever enumerates against one known pattern
// need not link regexp/syntax or re-run the construction at start-up.
func FromTable(nStates int, labels []Label, edges []Edge, finals []bool) *Automaton {
	a := newAutomaton(nStates, labels)
	a.edges = edges
	copy(a.finals, finals)
	a.finalizeIndices()
	return a
}

// buildAutomaton turns a fully composed local language into an Automaton:
// one state per position plus the initial state 0, edges from the F factor
// (shifted by one to make room for state 0) and from P (edges out of the
// initial state), finals from D (plus state 0 itself when the empty word is
// accepted).
func buildAutomaton(lang localLang) *Automaton {
	nStates := len(lang.labels) + 1
	a := newAutomaton(nStates, lang.labels)

	for _, p := range lang.factors.p {
		a.addEdge(0, p, p+1)
	}
	for _, pair := range lang.factors.f {
		src, dst := pair[0], pair[1]
		a.addEdge(src+1, dst, dst+1)
	}
	for _, d := range lang.factors.d {
		a.finals[d+1] = true
	}
	if lang.factors.g {
		a.finals[0] = true
	}

	a.finalizeIndices()
	return a
}
