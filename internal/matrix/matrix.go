// Package matrix implements the dense boolean bit-matrix used by the jump
// index to represent layer-to-layer reachability (SPEC_FULL.md §3, "Boolean
// matrix"). Rows are backed by github.com/bits-and-blooms/bitset instead of
// the flat []bool slice the reference implementation
// (original_source/src/matrix.rs) uses, following godoctor-godoctor's use of
// the same library for its dataflow bitsets.
package matrix

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/varspan/varspan/internal/invariant"
)

// Matrix is a dense rows×cols boolean matrix.
type Matrix struct {
	rows, cols int
	data       []*bitset.BitSet
}

// New returns a rows×cols matrix with every entry false.
func New(rows, cols int) *Matrix {
	data := make([]*bitset.BitSet, rows)
	for i := range data {
		data[i] = bitset.New(uint(cols))
	}
	return &Matrix{rows: rows, cols: cols, data: data}
}

// Rows returns the matrix's row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the matrix's column count.
func (m *Matrix) Cols() int { return m.cols }

// Set marks entry (row, col) true.
func (m *Matrix) Set(row, col int) {
	m.data[row].Set(uint(col))
}

// At returns entry (row, col).
func (m *Matrix) At(row, col int) bool {
	return m.data[row].Test(uint(col))
}

// Row returns the underlying bitset for a row; callers must not mutate it.
func (m *Matrix) Row(row int) *bitset.BitSet {
	return m.data[row]
}

// IterRow returns the set column indices of a row in ascending order.
func (m *Matrix) IterRow(row int) []int {
	return setIndices(m.data[row])
}

// IterCol returns the set row indices of a column in ascending order.
func (m *Matrix) IterCol(col int) []int {
	var out []int
	for r := 0; r < m.rows; r++ {
		if m.data[r].Test(uint(col)) {
			out = append(out, r)
		}
	}
	return out
}

func setIndices(b *bitset.BitSet) []int {
	var out []int
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// Mul computes the boolean matrix product self×other (entry (i,j) is true
// iff some k has self[i][k] && other[k][j]), matching the `reach[(ℓ′, ℓ)] =
// reach[(ℓ′, ℓ-1)] × reach[(ℓ-1, ℓ)]` composition rule of SPEC_FULL.md §3.
// Implemented as a row-wise OR-accumulation over other's rows, rather than
// the reference's per-cell AND/OR nested loop, since bitset union is a
// single word-parallel operation per contributing row.
func (m *Matrix) Mul(other *Matrix) *Matrix {
	invariant.Check(m.cols == other.rows, "matrix: dimension mismatch in Mul (%dx%d * %dx%d)", m.rows, m.cols, other.rows, other.cols)
	result := New(m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		acc := result.data[i]
		for _, k := range m.IterRow(i) {
			acc.InPlaceUnion(other.data[k])
		}
	}
	return result
}

// DropRows returns a copy of the matrix with the given row indices removed,
// renumbering remaining rows in order (SPEC_FULL.md §4.3 cleaning: "truncate
// affected reach matrices ... rows for outgoing").
func (m *Matrix) DropRows(drop map[int]bool) *Matrix {
	keep := make([]int, 0, m.rows)
	for r := 0; r < m.rows; r++ {
		if !drop[r] {
			keep = append(keep, r)
		}
	}
	out := New(len(keep), m.cols)
	for newR, oldR := range keep {
		out.data[newR] = m.data[oldR].Clone()
	}
	return out
}

// DropCols returns a copy of the matrix with the given column indices
// removed, renumbering remaining columns in order ("... columns for
// incoming").
func (m *Matrix) DropCols(drop map[int]bool) *Matrix {
	remap := make(map[int]int, m.cols)
	nCols := 0
	for c := 0; c < m.cols; c++ {
		if !drop[c] {
			remap[c] = nCols
			nCols++
		}
	}
	out := New(m.rows, nCols)
	for r := 0; r < m.rows; r++ {
		for _, c := range m.IterRow(r) {
			if newC, ok := remap[c]; ok {
				out.Set(r, newC)
			}
		}
	}
	return out
}
