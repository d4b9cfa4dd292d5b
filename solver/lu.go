// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math/cmplx"
	"sort"

	"github.com/katalvlaran/fdfd/operator"
)

// pivotTol scales the relative pivot threshold: a column whose best
// available pivot is below pivotTol times the largest matrix entry is
// treated as singular.
const pivotTol = 1e-13

type lEntry struct {
	step int        // pivot step whose row was subtracted
	f    complex128 // elimination factor
}

type uEntry struct {
	col int
	v   complex128
}

// LU is the factorization PA = LU of a square complex sparse matrix,
// with columns kept in natural order. Immutable once built; Solve may
// be called repeatedly and concurrently.
type LU struct {
	n      int
	pivRow []int      // original row chosen at each pivot step
	lhist  [][]lEntry // per pivot step: factors applied while reducing that row
	urows  [][]uEntry // per pivot step: the final upper-triangular row, sorted by column
}

// Factor computes the LU factorization of a with row partial pivoting.
// Returns ErrNonSquare for rectangular input and ErrSingularMatrix when
// no acceptable pivot exists in some column.
// Complexity: O(n²) pivot scans plus fill-proportional elimination work;
// for the banded curl-curl systems this behaves like O(n·b²) with
// bandwidth b.
func Factor(a *operator.Matrix) (*LU, error) {
	r, c := a.Dims()
	if r != c {
		return nil, fmt.Errorf("factor %dx%d: %w", r, c, ErrNonSquare)
	}
	n := r

	// Working rows as column→value maps; scale for the pivot threshold.
	rows := make([]map[int]complex128, n)
	var scale float64
	for i := 0; i < n; i++ {
		m := make(map[int]complex128, 8)
		a.Row(i, func(j int, v complex128) {
			m[j] = v
			if av := cmplx.Abs(v); av > scale {
				scale = av
			}
		})
		rows[i] = m
	}
	if scale == 0 {
		return nil, fmt.Errorf("factor: zero matrix: %w", ErrSingularMatrix)
	}
	threshold := pivotTol * scale

	lu := &LU{
		n:      n,
		pivRow: make([]int, n),
		lhist:  make([][]lEntry, n),
		urows:  make([][]uEntry, n),
	}
	histByRow := make([][]lEntry, n)

	active := make([]int, n)
	for i := range active {
		active[i] = i
	}
	// candidates: active-slice positions of rows holding column k.
	candidates := make([]int, 0, 64)

	for k := 0; k < n; k++ {
		// One pass over active rows: find the best pivot and remember
		// every row that participates in this column's elimination.
		candidates = candidates[:0]
		best, bestPos := 0.0, -1
		for pos, ri := range active {
			v, ok := rows[ri][k]
			if !ok {
				continue
			}
			candidates = append(candidates, pos)
			if av := cmplx.Abs(v); av > best {
				best, bestPos = av, pos
			}
		}
		if bestPos < 0 || best < threshold {
			return nil, fmt.Errorf("factor: no pivot for column %d (best %.3g): %w", k, best, ErrSingularMatrix)
		}

		pr := active[bestPos]
		lu.pivRow[k] = pr
		prow := rows[pr]
		pv := prow[k]

		// Eliminate column k from every other candidate row.
		for _, pos := range candidates {
			ri := active[pos]
			if ri == pr {
				continue
			}
			f := rows[ri][k] / pv
			delete(rows[ri], k)
			for j, v := range prow {
				if j == k {
					continue
				}
				rows[ri][j] -= f * v
			}
			histByRow[ri] = append(histByRow[ri], lEntry{step: k, f: f})
		}

		// Retire the pivot row from the active set (order is irrelevant).
		active[bestPos] = active[len(active)-1]
		active = active[:len(active)-1]
	}

	// Freeze the upper-triangular rows and the per-step histories.
	for k := 0; k < n; k++ {
		pr := lu.pivRow[k]
		lu.lhist[k] = histByRow[pr]
		prow := rows[pr]
		u := make([]uEntry, 0, len(prow))
		for j, v := range prow {
			u = append(u, uEntry{col: j, v: v})
		}
		sort.Slice(u, func(a, b int) bool { return u[a].col < u[b].col })
		lu.urows[k] = u
		rows[pr] = nil
	}

	return lu, nil
}

// Dim returns the factored dimension.
func (lu *LU) Dim() int { return lu.n }

// Solve computes x with A·x = b for one dense right-hand side.
// Returns ErrBadRHS on a length mismatch; b is not mutated.
// Complexity: O(nnz(L) + nnz(U)).
func (lu *LU) Solve(b []complex128) ([]complex128, error) {
	if len(b) != lu.n {
		return nil, fmt.Errorf("solve with rhs length %d, dimension %d: %w", len(b), lu.n, ErrBadRHS)
	}
	// Forward substitution in pivot order: z = L⁻¹·P·b.
	z := make([]complex128, lu.n)
	for k := 0; k < lu.n; k++ {
		acc := b[lu.pivRow[k]]
		for _, e := range lu.lhist[k] {
			acc -= e.f * z[e.step]
		}
		z[k] = acc
	}
	// Back substitution: U·x = z, columns in natural order with the
	// pivot of step k sitting at column k.
	x := make([]complex128, lu.n)
	for k := lu.n - 1; k >= 0; k-- {
		acc := z[k]
		var pv complex128
		for _, e := range lu.urows[k] {
			if e.col == k {
				pv = e.v

				continue
			}
			acc -= e.v * x[e.col]
		}
		x[k] = acc / pv
	}

	return x, nil
}
