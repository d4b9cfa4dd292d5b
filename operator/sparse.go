// SPDX-License-Identifier: MIT

package operator

import (
	"fmt"
	"sort"
)

// Matrix is an immutable complex sparse matrix in compressed sparse row
// (CSR) form. Construct one through a Builder or the Identity/Diag/
// shift constructors; all composition methods return new matrices.
type Matrix struct {
	rows, cols int
	rowPtr     []int
	colInd     []int
	vals       []complex128
}

// Dims returns the matrix shape.
// Complexity: O(1).
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// NNZ returns the number of stored non-zero entries.
// Complexity: O(1).
func (m *Matrix) NNZ() int { return len(m.vals) }

// At returns the entry at (i,j). Out-of-range indices panic: indexing
// is construction-time logic, not user input.
// Complexity: O(log nnz(row i)).
func (m *Matrix) At(i, j int) complex128 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("operator: At(%d,%d) out of range for %dx%d", i, j, m.rows, m.cols))
	}
	start, end := m.rowPtr[i], m.rowPtr[i+1]
	pos := sort.Search(end-start, func(k int) bool { return m.colInd[start+k] >= j }) + start
	if pos < end && m.colInd[pos] == j {
		return m.vals[pos]
	}

	return 0
}

// Row visits the non-zero entries of row i in ascending column order.
// Complexity: O(nnz(row i)).
func (m *Matrix) Row(i int, visit func(j int, v complex128)) {
	for p := m.rowPtr[i]; p < m.rowPtr[i+1]; p++ {
		visit(m.colInd[p], m.vals[p])
	}
}

// MulVec computes y = M·x.
// Returns ErrDimensionMismatch if len(x) != cols.
// Complexity: O(nnz).
func (m *Matrix) MulVec(x []complex128) ([]complex128, error) {
	if len(x) != m.cols {
		return nil, fmt.Errorf("mulvec %dx%d by vector of length %d: %w", m.rows, m.cols, len(x), ErrDimensionMismatch)
	}
	y := make([]complex128, m.rows)
	for i := 0; i < m.rows; i++ {
		var acc complex128
		for p := m.rowPtr[i]; p < m.rowPtr[i+1]; p++ {
			acc += m.vals[p] * x[m.colInd[p]]
		}
		y[i] = acc
	}

	return y, nil
}

// triplet is one pending (row, col, value) entry in a Builder.
type triplet struct {
	i, j int
	v    complex128
}

// Builder accumulates (row, col, value) triplets and compresses them
// into a CSR Matrix. Duplicate coordinates are summed; exact zeros are
// dropped at Build time.
type Builder struct {
	rows, cols int
	trip       []triplet
}

// NewBuilder returns a Builder for a rows×cols matrix.
// Panics on non-positive shape (programmer error).
func NewBuilder(rows, cols int) *Builder {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("operator: NewBuilder(%d,%d): %v", rows, cols, ErrBadShape))
	}

	return &Builder{rows: rows, cols: cols}
}

// Add accumulates v into entry (i,j). Out-of-range indices panic.
// Complexity: amortized O(1).
func (b *Builder) Add(i, j int, v complex128) {
	if i < 0 || i >= b.rows || j < 0 || j >= b.cols {
		panic(fmt.Sprintf("operator: Builder.Add(%d,%d) out of range for %dx%d", i, j, b.rows, b.cols))
	}
	b.trip = append(b.trip, triplet{i: i, j: j, v: v})
}

// Build compresses the accumulated triplets into an immutable Matrix.
// The Builder may be reused afterwards; its pending entries are kept.
// Complexity: O(nnz log nnz).
func (b *Builder) Build() *Matrix {
	trip := make([]triplet, len(b.trip))
	copy(trip, b.trip)
	sort.Slice(trip, func(a, c int) bool {
		if trip[a].i != trip[c].i {
			return trip[a].i < trip[c].i
		}

		return trip[a].j < trip[c].j
	})

	m := &Matrix{
		rows:   b.rows,
		cols:   b.cols,
		rowPtr: make([]int, b.rows+1),
		colInd: make([]int, 0, len(trip)),
		vals:   make([]complex128, 0, len(trip)),
	}
	for k := 0; k < len(trip); {
		i, j := trip[k].i, trip[k].j
		var sum complex128
		for ; k < len(trip) && trip[k].i == i && trip[k].j == j; k++ {
			sum += trip[k].v
		}
		if sum != 0 {
			m.colInd = append(m.colInd, j)
			m.vals = append(m.vals, sum)
			m.rowPtr[i+1]++
		}
	}
	for i := 0; i < b.rows; i++ {
		m.rowPtr[i+1] += m.rowPtr[i]
	}

	return m
}

// Identity returns the n×n identity operator.
// Complexity: O(n).
func Identity(n int) *Matrix {
	if n <= 0 {
		panic(fmt.Sprintf("operator: Identity(%d): %v", n, ErrBadShape))
	}
	m := &Matrix{
		rows:   n,
		cols:   n,
		rowPtr: make([]int, n+1),
		colInd: make([]int, n),
		vals:   make([]complex128, n),
	}
	for i := 0; i < n; i++ {
		m.rowPtr[i+1] = i + 1
		m.colInd[i] = i
		m.vals[i] = 1
	}

	return m
}

// Diag returns the diagonal operator carrying d on its main diagonal.
// Zero diagonal entries are stored: downstream factorization expects a
// structurally full diagonal.
// Complexity: O(n).
func Diag(d []complex128) *Matrix {
	n := len(d)
	if n == 0 {
		panic(fmt.Sprintf("operator: Diag of empty vector: %v", ErrBadShape))
	}
	m := &Matrix{
		rows:   n,
		cols:   n,
		rowPtr: make([]int, n+1),
		colInd: make([]int, n),
		vals:   make([]complex128, n),
	}
	for i := 0; i < n; i++ {
		m.rowPtr[i+1] = i + 1
		m.colInd[i] = i
		m.vals[i] = d[i]
	}

	return m
}
