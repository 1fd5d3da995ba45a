package enumerator

import (
	"sort"

	"github.com/varspan/varspan/internal/automaton"
	"github.com/varspan/varspan/internal/mapping"
)

// split is one feasible (S⁺, γ₂) pair produced by a per-level expansion.
type split struct {
	sPlus markerSet
	gamma []int
}

// perLevel enumerates every maximal feasible (S⁺, γ₂) split for one layer,
// per SPEC_FULL.md §4.5.1: first the candidate marker set K reachable
// backward from gamma, then a DFS over binary S⁺/S⁻ choices for each marker
// of K in ascending id order.
type perLevel struct {
	results []split
	pos     int
}

func newPerLevel(a *automaton.Automaton, inLevel map[int]bool, gamma []int) *perLevel {
	k := reachableMarkers(a, inLevel, gamma)
	pl := &perLevel{}
	dfsSplit(a, inLevel, gamma, k, 0, markerSet{}, markerSet{}, &pl.results)
	return pl
}

// next returns the next feasible split, or ok=false once exhausted.
func (p *perLevel) next() (split, bool) {
	if p.pos >= len(p.results) {
		return split{}, false
	}
	s := p.results[p.pos]
	p.pos++
	return s, true
}

// reachableMarkers computes K: every marker m such that a reverse-marker
// path exists, within the layer, from some v ∈ gamma to a transition
// labeled m, in ascending marker-id order for deterministic DFS traversal.
func reachableMarkers(a *automaton.Automaton, inLevel map[int]bool, gamma []int) []mapping.Marker {
	seenMarker := markerSet{}
	visited := make(map[int]bool, len(gamma))
	queue := append([]int(nil), gamma...)
	for _, v := range gamma {
		visited[v] = true
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, e := range a.RevAssign(v) {
			u := e.Source
			if !inLevel[u] {
				continue
			}
			seenMarker[a.Marker(e)] = true
			if !visited[u] {
				visited[u] = true
				queue = append(queue, u)
			}
		}
	}

	out := make([]mapping.Marker, 0, len(seenMarker))
	for m := range seenMarker {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return markerOrder(out[i]) < markerOrder(out[j]) })
	return out
}

func dfsSplit(a *automaton.Automaton, inLevel map[int]bool, gamma []int, k []mapping.Marker, d int, sPlus, sMinus markerSet, results *[]split) {
	if d == len(k) {
		gamma2 := follow(a, inLevel, gamma, sPlus, sMinus)
		if len(gamma2) > 0 {
			*results = append(*results, split{sPlus: sPlus.clone(), gamma: gamma2})
		}
		return
	}

	m := k[d]

	sPlus[m] = true
	if gamma2 := follow(a, inLevel, gamma, sPlus, sMinus); len(gamma2) > 0 {
		dfsSplit(a, inLevel, gamma, k, d+1, sPlus, sMinus, results)
	}
	delete(sPlus, m)

	sMinus[m] = true
	if gamma2 := follow(a, inLevel, gamma, sPlus, sMinus); len(gamma2) > 0 {
		dfsSplit(a, inLevel, gamma, k, d+1, sPlus, sMinus, results)
	}
	delete(sMinus, m)
}
