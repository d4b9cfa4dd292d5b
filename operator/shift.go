// SPDX-License-Identifier: MIT

package operator

import (
	"github.com/katalvlaran/fdfd/grid"
)

// Shift builds the operator that moves a flattened 2D field by (sx,sy)
// cells: (S·f)(x,y) = f(x+sx, y+sy). Out-of-range source coordinates
// are wrapped (Periodic) or reflected (Mirror) per the boundary policy.
//
// Under Periodic the result is a permutation matrix, so
// Shift(d,-sx,-sy,Periodic) is both the transpose and the exact inverse
// of Shift(d,sx,sy,Periodic). Under Mirror the same holds on cells
// whose shifted coordinate stays in range; see the package note.
// Complexity: O(Nx×Ny).
func Shift(d grid.Dims, sx, sy int, bc Boundary) *Matrix {
	n := d.N()
	m := &Matrix{
		rows:   n,
		cols:   n,
		rowPtr: make([]int, n+1),
		colInd: make([]int, n),
		vals:   make([]complex128, n),
	}
	for y := 0; y < d.Ny; y++ {
		gy := resolve(y+sy, d.Ny, bc)
		for x := 0; x < d.Nx; x++ {
			gx := resolve(x+sx, d.Nx, bc)
			i := d.Index(x, y)
			m.rowPtr[i+1] = i + 1
			m.colInd[i] = d.Index(gx, gy)
			m.vals[i] = 1
		}
	}

	return m
}

// Derivative builders. On the unit-spacing staggered grid a forward
// difference lands on the half-integer position and a backward
// difference on the integer position, which is exactly where the PML
// stretch factors of pml.Stretched are evaluated.

// ForwardDiff returns S(+1 along axis) − I, the forward difference.
// Complexity: O(Nx×Ny).
func ForwardDiff(d grid.Dims, axis Axis, bc Boundary) *Matrix {
	df, _ := unitShift(d, axis, +1, bc).Sub(Identity(d.N())) // same-shape operands cannot mismatch

	return df
}

// BackwardDiff returns I − S(−1 along axis), the backward difference.
// Complexity: O(Nx×Ny).
func BackwardDiff(d grid.Dims, axis Axis, bc Boundary) *Matrix {
	db, _ := Identity(d.N()).Sub(unitShift(d, axis, -1, bc))

	return db
}

func unitShift(d grid.Dims, axis Axis, s int, bc Boundary) *Matrix {
	if axis == AxisY {
		return Shift(d, 0, s, bc)
	}

	return Shift(d, s, 0, bc)
}

// resolve maps a possibly out-of-range coordinate into [0,n) under the
// given boundary policy. Mirror reflects about the grid edge, so -1
// maps to 0 and n maps to n-1; valid for |overshoot| <= n.
func resolve(v, n int, bc Boundary) int {
	if v >= 0 && v < n {
		return v
	}
	if bc == Mirror {
		if v < 0 {
			return -v - 1
		}

		return 2*n - 1 - v
	}

	return ((v % n) + n) % n
}
