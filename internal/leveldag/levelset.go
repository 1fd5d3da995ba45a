// Package leveldag builds and navigates the level-DAG of SPEC_FULL.md §3/§4.3:
// the product of the variable-NFA and the text, one layer per code-point
// position, together with the jump index that lets the enumerator skip
// directly between layers that matter (those with an ingoing assignation)
// instead of walking every layer in between. Grounded on
// original_source/src/mapping/{levelset,jump,indexed_dag}.rs; the exponential
// checkpoint cleaning in clean.go has no counterpart there and is original
// engineering against SPEC_FULL.md §4.3's amortized-cost requirement.
package leveldag

// LevelSet partitions product-graph vertices into levels (layers). The same
// vertex id can appear in several levels; within one level, vertices are
// assigned a dense 0-based position used to index into reach matrices.
type LevelSet struct {
	levels      map[int][]int
	vertexIndex map[[2]int]int // (level, vertex) -> position within level
}

// NewLevelSet returns an empty LevelSet.
func NewLevelSet() *LevelSet {
	return &LevelSet{
		levels:      make(map[int][]int),
		vertexIndex: make(map[[2]int]int),
	}
}

// HasLevel reports whether any vertex has been registered at level.
func (ls *LevelSet) HasLevel(level int) bool {
	_, ok := ls.levels[level]
	return ok
}

// GetLevel returns the vertices registered at level, in registration order.
func (ls *LevelSet) GetLevel(level int) []int {
	return ls.levels[level]
}

// NumLevels returns the number of distinct levels currently registered.
func (ls *LevelSet) NumLevels() int {
	return len(ls.levels)
}

// VertexIndex returns the dense position of vertex within level, if it was
// registered there.
func (ls *LevelSet) VertexIndex(level, vertex int) (int, bool) {
	idx, ok := ls.vertexIndex[[2]int{level, vertex}]
	return idx, ok
}

// Register records vertex as belonging to level, assigning it a fresh dense
// position the first time it is seen at that level; repeated registration of
// the same (level, vertex) pair is a no-op and returns the original
// position.
func (ls *LevelSet) Register(level, vertex int) int {
	key := [2]int{level, vertex}
	if idx, ok := ls.vertexIndex[key]; ok {
		return idx
	}
	idx := len(ls.levels[level])
	ls.levels[level] = append(ls.levels[level], vertex)
	ls.vertexIndex[key] = idx
	return idx
}

// RemoveFromLevel drops every vertex in del from level, compacting and
// renumbering the positions of those that remain. If the level becomes
// empty it is removed entirely.
func (ls *LevelSet) RemoveFromLevel(level int, del map[int]bool) {
	old := ls.levels[level]
	next := make([]int, 0, len(old))
	for _, v := range old {
		if del[v] {
			delete(ls.vertexIndex, [2]int{level, v})
			continue
		}
		ls.vertexIndex[[2]int{level, v}] = len(next)
		next = append(next, v)
	}
	if len(next) == 0 {
		delete(ls.levels, level)
	} else {
		ls.levels[level] = next
	}
}

// DropLevel removes a level and all its vertex-index entries entirely.
func (ls *LevelSet) DropLevel(level int) {
	for _, v := range ls.levels[level] {
		delete(ls.vertexIndex, [2]int{level, v})
	}
	delete(ls.levels, level)
}
