package leveldag

import "github.com/varspan/varspan/internal/matrix"

type levelPair struct{ from, to int }

// Jump is the generic jump index over a product DAG built layer by layer:
// given the jumpable adjacency from one level to the next (Atom edges
// crossing a text position) and the non-jumpable adjacency within a level
// (Marker edges), it lets callers skip directly from any level to the
// closest level below it that has an ingoing assignation, without walking
// every level in between (SPEC_FULL.md §3, "jump index").
type Jump struct {
	levels    *LevelSet
	lastLevel int

	// nonjumpVertices marks vertices reached only via a non-jumpable
	// (Marker) edge at the level they were registered in.
	nonjumpVertices map[[2]int]bool

	// jl[(level,vertex)] is the closest level at or below `level` with an
	// ingoing assignation, reachable from vertex.
	jl map[[2]int]int
	// rlevel[level] is the image of level's vertices under jl: every level
	// reachable via a single jump from `level`.
	rlevel map[int]map[int]bool
	// revRlevel is rlevel's reverse index: revRlevel[sub] holds every level
	// that can jump straight into sub.
	revRlevel map[int]map[int]bool
	// reach[(from,to)] is the vertex-to-vertex accessibility matrix between
	// two levels connected by a chain of rlevel jumps.
	reach map[levelPair]*matrix.Matrix
}

// NewJump seeds the index with the automaton's initial states as level 0,
// then closes level 0 over nonjumpAdj (the marker closure).
func NewJump(initial []int, nonjumpAdj func(state int) []int) *Jump {
	j := &Jump{
		levels:          NewLevelSet(),
		nonjumpVertices: make(map[[2]int]bool),
		jl:              make(map[[2]int]int),
		rlevel:          map[int]map[int]bool{0: {}},
		revRlevel:       map[int]map[int]bool{0: {}},
		reach:           make(map[levelPair]*matrix.Matrix),
	}
	for _, s := range initial {
		j.levels.Register(0, s)
		j.jl[[2]int{0, s}] = 0
	}
	j.extendLevel(0, nonjumpAdj)
	return j
}

// LastLevel returns the index of the most recently completed level.
func (j *Jump) LastLevel() int { return j.lastLevel }

// Levels exposes the underlying LevelSet for callers that need raw vertex
// membership (the enumerator, when assembling output events).
func (j *Jump) Levels() *LevelSet { return j.levels }

// InitNextLevel advances the DAG by one text position: jumpAdj gives the
// Atom-edge successors of each vertex in the current last level (indexed by
// vertex id, valid across the whole automaton) and nonjumpAdj gives the
// Marker-closure successors within the new level.
func (j *Jump) InitNextLevel(jumpAdj func(state int) []int, nonjumpAdj func(state int) []int) {
	lastLevel := j.lastLevel
	nextLevel := lastLevel + 1

	sourceVertices := append([]int(nil), j.levels.GetLevel(lastLevel)...)

	for _, source := range sourceVertices {
		for _, target := range jumpAdj(source) {
			_, existed := j.levels.VertexIndex(nextLevel, target)
			j.levels.Register(nextLevel, target)
			if !existed {
				j.jl[[2]int{nextLevel, target}] = 0
			}
			targetJL := j.jl[[2]int{nextLevel, target}]

			if j.nonjumpVertices[[2]int{lastLevel, source}] {
				j.jl[[2]int{nextLevel, target}] = lastLevel
			} else {
				sourceJL := j.jl[[2]int{lastLevel, source}]
				j.jl[[2]int{nextLevel, target}] = maxInt(sourceJL, targetJL)
			}
		}
	}

	j.extendLevel(nextLevel, nonjumpAdj)
	j.initReach(nextLevel, jumpAdj)
	j.lastLevel = nextLevel
}

// extendLevel registers, within level, every vertex reachable from the
// vertices already in level by a single application of nonjumpAdj (which is
// itself the transitive marker closure, so one application suffices).
func (j *Jump) extendLevel(level int, nonjumpAdj func(state int) []int) {
	old := append([]int(nil), j.levels.GetLevel(level)...)
	for _, source := range old {
		for _, target := range nonjumpAdj(source) {
			j.levels.Register(level, target)
			j.nonjumpVertices[[2]int{level, target}] = true
			// target has an ingoing assignation within this very level,
			// so the closest level at-or-below `level` with an ingoing
			// assignation reachable from it is `level` itself.
			j.jl[[2]int{level, target}] = level
		}
	}
}

func (j *Jump) initReach(level int, jumpAdj func(state int) []int) {
	currLevel := j.levels.GetLevel(level)

	rlevel := make(map[int]bool)
	for _, source := range currLevel {
		if target, ok := j.jl[[2]int{level, source}]; ok {
			rlevel[target] = true
		}
	}
	j.rlevel[level] = rlevel

	if _, ok := j.revRlevel[level]; !ok {
		j.revRlevel[level] = make(map[int]bool)
	}
	for sub := range rlevel {
		if _, ok := j.revRlevel[sub]; !ok {
			j.revRlevel[sub] = make(map[int]bool)
		}
		j.revRlevel[sub][level] = true
	}

	prevLevel := j.levels.GetLevel(level - 1)
	direct := matrix.New(len(prevLevel), len(currLevel))
	for _, source := range prevLevel {
		idSource, _ := j.levels.VertexIndex(level-1, source)
		for _, target := range jumpAdj(source) {
			if idTarget, ok := j.levels.VertexIndex(level, target); ok {
				direct.Set(idSource, idTarget)
			}
		}
	}
	j.reach[levelPair{level - 1, level}] = direct

	for sub := range rlevel {
		if sub >= level-1 {
			continue
		}
		left, ok := j.reach[levelPair{sub, level - 1}]
		if !ok {
			continue
		}
		j.reach[levelPair{sub, level}] = left.Mul(direct)
	}

	if !rlevel[level-1] {
		delete(j.reach, levelPair{level - 1, level})
	}
}

// Jump finds, from a set of vertices gamma at level, the closest level below
// it with an ingoing assignation that some vertex of gamma can still reach
// (SPEC_FULL.md §4.4). It returns (level, nil, false) when no jump is
// required or possible — either gamma is empty, the closest reachable
// assignation level is `level` itself, or the reachability data needed to
// compute γ* is no longer retained (the jump index's cleaning pass having
// judged it unreachable from any live query) — in all of those cases the
// caller should treat this as a dead end and push no further frame.
func (j *Jump) Jump(level int, gamma []int) (int, []int, bool) {
	jumpLevel := -1
	for _, v := range gamma {
		if l, ok := j.jl[[2]int{level, v}]; ok {
			if l > jumpLevel {
				jumpLevel = l
			}
		}
	}
	if jumpLevel < 0 || jumpLevel == level {
		return level, nil, false
	}

	reach, ok := j.reach[levelPair{jumpLevel, level}]
	if !ok {
		return level, nil, false
	}

	sourceIdx := make([]int, 0, len(gamma))
	for _, v := range gamma {
		if idx, ok := j.levels.VertexIndex(level, v); ok {
			sourceIdx = append(sourceIdx, idx)
		}
	}

	var out []int
	for l, target := range j.levels.GetLevel(jumpLevel) {
		for _, k := range sourceIdx {
			if reach.At(l, k) {
				out = append(out, target)
				break
			}
		}
	}
	if len(out) == 0 {
		return level, nil, false
	}
	return jumpLevel, out, true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
