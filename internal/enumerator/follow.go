// Package enumerator implements the lazy, constant-delay Mapping iterator of
// SPEC_FULL.md §4.4/§4.5: the frame-stack main loop, the per-level feasible
// (S⁺,S⁻) marker-split search, and the reverse-marker-path Follow operation
// it relies on. None of this has a counterpart in original_source — the
// retrieved reference implementation stops at building the jump index
// (mapping/{levelset,jump,indexed_dag}.rs) and never implements the
// constant-delay walk itself, so this package is built directly from the
// algorithm description, in the style of the teacher's pull-based streaming
// iterators (stream/stream.go).
package enumerator

import (
	"sort"

	"github.com/varspan/varspan/internal/automaton"
	"github.com/varspan/varspan/internal/mapping"
)

func markerOrder(m mapping.Marker) int {
	return m.Var.ID()*2 + int(m.Tag)
}

type markerSet map[mapping.Marker]bool

func (s markerSet) clone() markerSet {
	out := make(markerSet, len(s))
	for k := range s {
		out[k] = true
	}
	return out
}

func (s markerSet) subsetOf(other markerSet) bool {
	for k := range s {
		if !other[k] {
			return false
		}
	}
	return true
}

func setsComparable(a, b markerSet) bool {
	return a.subsetOf(b) || b.subsetOf(a)
}

type pathEntry struct {
	set          markerSet
	incomparable bool
}

// follow returns the set of vertices u within level (restricted to
// inLevel) from which a reverse path along Marker edges reaches some vertex
// of gamma using every marker in sPlus and none in sMinus (SPEC_FULL.md
// §4.5.2).
func follow(a *automaton.Automaton, inLevel map[int]bool, gamma []int, sPlus, sMinus markerSet) []int {
	pathSet := make(map[int]*pathEntry, len(gamma))
	for _, v := range gamma {
		if _, ok := pathSet[v]; !ok {
			pathSet[v] = &pathEntry{set: markerSet{}}
		}
	}

	queue := append([]int(nil), gamma...)
	queued := make(map[int]bool, len(gamma))
	for _, v := range gamma {
		queued[v] = true
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		finalized := pathSet[v]

		for _, e := range a.RevAssign(v) {
			u := e.Source
			if !inLevel[u] {
				continue
			}
			m := a.Marker(e)
			if sMinus[m] {
				continue
			}

			newPS := finalized.set.clone()
			if sPlus[m] {
				newPS[m] = true
			}

			cur, seen := pathSet[u]
			switch {
			case !seen:
				pathSet[u] = &pathEntry{set: newPS}
			case cur.incomparable:
				// leave it
			case setsComparable(cur.set, newPS):
				cur.set = newPS
			default:
				cur.incomparable = true
			}

			if !queued[u] {
				queued[u] = true
				queue = append(queue, u)
			}
		}
	}

	var out []int
	for u, entry := range pathSet {
		if entry.incomparable {
			continue
		}
		if len(entry.set) == len(sPlus) && entry.set.subsetOf(sPlus) {
			out = append(out, u)
		}
	}
	sort.Ints(out)
	return out
}
