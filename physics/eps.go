package physics

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fdfd/grid"
	"github.com/katalvlaran/fdfd/operator"
)

// Components holds the permittivity sampled at the two staggered edge
// positions, flattened over the grid. X is the x-averaged map at
// (x+½, y), seen by Ey; Y is the y-averaged map at (x, y+½), seen by Ex.
type Components struct {
	X, Y []complex128
}

// InterpEps splits a cell-centered permittivity map (Ny×Nx) into the
// two staggered components by linearly averaging each cell with its
// forward neighbor along the respective axis. The neighbor index wraps
// under Periodic and clamps to the edge under Mirror, matching the
// shift-operator boundary so field and material indices stay aligned.
// Returns grid.ErrShapeMismatch if the map shape disagrees with dims.
// Complexity: O(Nx×Ny).
func InterpEps(eps *mat.Dense, d grid.Dims, bc operator.Boundary) (*Components, error) {
	h, w := eps.Dims()
	if h != d.Ny || w != d.Nx {
		return nil, fmt.Errorf("interpolate %dx%d permittivity on %dx%d grid: %w", w, h, d.Nx, d.Ny, grid.ErrShapeMismatch)
	}
	c := &Components{
		X: make([]complex128, d.N()),
		Y: make([]complex128, d.N()),
	}
	for y := 0; y < d.Ny; y++ {
		yn := next(y, d.Ny, bc)
		for x := 0; x < d.Nx; x++ {
			xn := next(x, d.Nx, bc)
			i := d.Index(x, y)
			c.X[i] = complex(0.5*(eps.At(y, x)+eps.At(y, xn)), 0)
			c.Y[i] = complex(0.5*(eps.At(y, x)+eps.At(yn, x)), 0)
		}
	}

	return c, nil
}

// Stacked returns the 2n-vector [Y; X], ordered to match the Hcurl
// block layout: the Ex block (rows 0..n-1) sees the y-averaged
// component, the Ey block (rows n..2n-1) the x-averaged one.
func (c *Components) Stacked() []complex128 {
	out := make([]complex128, 0, len(c.X)+len(c.Y))
	out = append(out, c.Y...)
	out = append(out, c.X...)

	return out
}

// inverted returns the element-wise reciprocal of v.
func inverted(v []complex128) []complex128 {
	out := make([]complex128, len(v))
	for i, e := range v {
		out[i] = 1 / e
	}

	return out
}

// next resolves the forward-neighbor index under the boundary policy.
func next(i, n int, bc operator.Boundary) int {
	if i+1 < n {
		return i + 1
	}
	if bc == operator.Mirror {
		return n - 1
	}

	return 0
}
