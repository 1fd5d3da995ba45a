package leveldag

import (
	"github.com/varspan/varspan/internal/automaton"
	"github.com/varspan/varspan/internal/mapping"
)

// Dag is the product of a variable-NFA and a text: one level per code-point
// position of text, built incrementally and indexed by a Jump so the
// enumerator can skip between levels that matter (SPEC_FULL.md §3
// "level-DAG"). Grounded on
// original_source/src/mapping/indexed_dag.rs's IndexedDag::compile.
type Dag struct {
	Automaton *automaton.Automaton
	Text      string
	Index     *mapping.CodepointIndex
	jump      *Jump
}

// Compile builds the full level-DAG for text against a, one level at a time.
func Compile(a *automaton.Automaton, text string) *Dag {
	index := mapping.NewCodepointIndex(text)

	closeAssign := func(s int) []int {
		set := a.CloseAssign(s)
		out := make([]int, 0, len(set))
		for v := range set {
			out = append(out, v)
		}
		return out
	}

	jump := NewJump([]int{a.Initial()}, closeAssign)

	for cp := 0; cp < index.Len(); cp++ {
		c := index.RuneAt(cp)
		adjForChar := a.AdjForChar(c)
		jumpAdj := func(s int) []int { return adjForChar[s] }
		jump.InitNextLevel(jumpAdj, closeAssign)
		jump.Clean(jump.LastLevel())
	}

	return &Dag{Automaton: a, Text: text, Index: index, jump: jump}
}

// LastLevel returns the index of the DAG's final level (equal to the number
// of code points in the text).
func (d *Dag) LastLevel() int { return d.jump.LastLevel() }

// Level returns the vertices registered at a level.
func (d *Dag) Level(level int) []int { return d.jump.Levels().GetLevel(level) }

// Jump finds the closest level below `level` with an ingoing assignation
// reachable from gamma, and the subset of its vertices reachable from gamma.
func (d *Dag) Jump(level int, gamma []int) (int, []int, bool) { return d.jump.Jump(level, gamma) }

// FinalVertices returns the vertices of the last level that are accepting
// states of the automaton: the possible endpoints of a full match.
func (d *Dag) FinalVertices() []int {
	var out []int
	for _, v := range d.Level(d.LastLevel()) {
		if d.Automaton.IsFinal(v) {
			out = append(out, v)
		}
	}
	return out
}
