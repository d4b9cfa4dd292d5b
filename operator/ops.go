// SPDX-License-Identifier: MIT
// Package operator: composition of CSR matrices. All methods are pure;
// operands are never mutated.

package operator

import "fmt"

// Scale returns alpha·M.
// Complexity: O(nnz).
func (m *Matrix) Scale(alpha complex128) *Matrix {
	out := &Matrix{
		rows:   m.rows,
		cols:   m.cols,
		rowPtr: m.rowPtr,
		colInd: m.colInd,
		vals:   make([]complex128, len(m.vals)),
	}
	for k, v := range m.vals {
		out.vals[k] = alpha * v
	}

	return out
}

// Add returns M + B.
// Returns ErrDimensionMismatch if shapes differ.
func (m *Matrix) Add(b *Matrix) (*Matrix, error) { return m.addScaled(b, 1) }

// Sub returns M − B.
// Returns ErrDimensionMismatch if shapes differ.
func (m *Matrix) Sub(b *Matrix) (*Matrix, error) { return m.addScaled(b, -1) }

// addScaled merges two CSR matrices row by row: M + alpha·B.
// Complexity: O(nnz(M) + nnz(B)).
func (m *Matrix) addScaled(b *Matrix, alpha complex128) (*Matrix, error) {
	if m.rows != b.rows || m.cols != b.cols {
		return nil, fmt.Errorf("add %dx%d and %dx%d: %w", m.rows, m.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	out := &Matrix{
		rows:   m.rows,
		cols:   m.cols,
		rowPtr: make([]int, m.rows+1),
		colInd: make([]int, 0, len(m.vals)+len(b.vals)),
		vals:   make([]complex128, 0, len(m.vals)+len(b.vals)),
	}
	for i := 0; i < m.rows; i++ {
		pa, ea := m.rowPtr[i], m.rowPtr[i+1]
		pb, eb := b.rowPtr[i], b.rowPtr[i+1]
		for pa < ea || pb < eb {
			var j int
			var v complex128
			switch {
			case pb >= eb || (pa < ea && m.colInd[pa] < b.colInd[pb]):
				j, v = m.colInd[pa], m.vals[pa]
				pa++
			case pa >= ea || b.colInd[pb] < m.colInd[pa]:
				j, v = b.colInd[pb], alpha*b.vals[pb]
				pb++
			default: // equal columns
				j, v = m.colInd[pa], m.vals[pa]+alpha*b.vals[pb]
				pa++
				pb++
			}
			if v != 0 {
				out.colInd = append(out.colInd, j)
				out.vals = append(out.vals, v)
				out.rowPtr[i+1]++
			}
		}
	}
	for i := 0; i < m.rows; i++ {
		out.rowPtr[i+1] += out.rowPtr[i]
	}

	return out, nil
}

// Mul returns the product M·B using the classic row-by-row sparse
// product with a dense accumulator.
// Returns ErrDimensionMismatch if M.cols != B.rows.
// Complexity: O(Σ_i Σ_{k∈row i of M} nnz(row k of B)).
func (m *Matrix) Mul(b *Matrix) (*Matrix, error) {
	if m.cols != b.rows {
		return nil, fmt.Errorf("mul %dx%d by %dx%d: %w", m.rows, m.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	out := &Matrix{
		rows:   m.rows,
		cols:   b.cols,
		rowPtr: make([]int, m.rows+1),
	}
	acc := make([]complex128, b.cols)
	mark := make([]int, b.cols)
	for i := range mark {
		mark[i] = -1
	}
	cols := make([]int, 0, 16)
	for i := 0; i < m.rows; i++ {
		cols = cols[:0]
		for pa := m.rowPtr[i]; pa < m.rowPtr[i+1]; pa++ {
			k, va := m.colInd[pa], m.vals[pa]
			for pb := b.rowPtr[k]; pb < b.rowPtr[k+1]; pb++ {
				j := b.colInd[pb]
				if mark[j] != i {
					mark[j] = i
					acc[j] = 0
					cols = append(cols, j)
				}
				acc[j] += va * b.vals[pb]
			}
		}
		sortInts(cols)
		for _, j := range cols {
			if acc[j] != 0 {
				out.colInd = append(out.colInd, j)
				out.vals = append(out.vals, acc[j])
				out.rowPtr[i+1]++
			}
		}
	}
	for i := 0; i < m.rows; i++ {
		out.rowPtr[i+1] += out.rowPtr[i]
	}

	return out, nil
}

// HStack returns [A | B], the horizontal concatenation of two matrices
// with equal row counts.
// Returns ErrDimensionMismatch if row counts differ.
// Complexity: O(nnz(A) + nnz(B)).
func HStack(a, b *Matrix) (*Matrix, error) {
	if a.rows != b.rows {
		return nil, fmt.Errorf("hstack %dx%d and %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	out := &Matrix{
		rows:   a.rows,
		cols:   a.cols + b.cols,
		rowPtr: make([]int, a.rows+1),
		colInd: make([]int, 0, len(a.vals)+len(b.vals)),
		vals:   make([]complex128, 0, len(a.vals)+len(b.vals)),
	}
	for i := 0; i < a.rows; i++ {
		for p := a.rowPtr[i]; p < a.rowPtr[i+1]; p++ {
			out.colInd = append(out.colInd, a.colInd[p])
			out.vals = append(out.vals, a.vals[p])
		}
		for p := b.rowPtr[i]; p < b.rowPtr[i+1]; p++ {
			out.colInd = append(out.colInd, a.cols+b.colInd[p])
			out.vals = append(out.vals, b.vals[p])
		}
		out.rowPtr[i+1] = len(out.vals)
	}

	return out, nil
}

// VStack returns [A; B], the vertical concatenation of two matrices
// with equal column counts.
// Returns ErrDimensionMismatch if column counts differ.
// Complexity: O(nnz(A) + nnz(B)).
func VStack(a, b *Matrix) (*Matrix, error) {
	if a.cols != b.cols {
		return nil, fmt.Errorf("vstack %dx%d and %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	out := &Matrix{
		rows:   a.rows + b.rows,
		cols:   a.cols,
		rowPtr: make([]int, a.rows+b.rows+1),
		colInd: make([]int, 0, len(a.vals)+len(b.vals)),
		vals:   make([]complex128, 0, len(a.vals)+len(b.vals)),
	}
	out.colInd = append(out.colInd, a.colInd...)
	out.vals = append(out.vals, a.vals...)
	out.colInd = append(out.colInd, b.colInd...)
	out.vals = append(out.vals, b.vals...)
	copy(out.rowPtr, a.rowPtr)
	for i := 0; i <= b.rows; i++ {
		out.rowPtr[a.rows+i] = len(a.vals) + b.rowPtr[i]
	}

	return out, nil
}

// sortInts is an insertion sort: the column lists produced by Mul are
// short and nearly sorted, where insertion sort beats sort.Ints.
func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
