package pml

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fdfd/grid"
	"github.com/katalvlaran/fdfd/operator"
)

// SFactors evaluates the stretch factor along one axis of n cells at
// coordinate i+offset for every index i. offset is 0 for integer
// (cell-center) sampling and 0.5 for the half-integer variant.
// Returns ErrInvalidProfile if the profile does not fit the axis.
// Complexity: O(n).
func SFactors(n int, omega float64, p Profile, offset float64) ([]complex128, error) {
	if n <= 0 || !p.validFor(n) {
		return nil, fmt.Errorf("sfactors over %d cells, thickness %d: %w", n, p.Thickness, ErrInvalidProfile)
	}
	s := make([]complex128, n)
	for i := 0; i < n; i++ {
		sigma := p.sigma(float64(i)+offset, n)
		s[i] = 1 / (1 + complex(0, sigma/omega))
	}

	return s, nil
}

// sigma evaluates the conductivity ramp at fractional position pos on
// an axis of n cells: zero in the interior, power-law up to SigmaMax
// at the outermost cell of each edge.
func (p Profile) sigma(pos float64, n int) float64 {
	if p.Thickness == 0 {
		return 0
	}
	t := float64(p.Thickness)
	var sigma float64
	if depth := t - pos; depth > 0 {
		sigma += p.SigmaMax * math.Pow(depth/t, p.Exponent)
	}
	if depth := pos - float64(n-1-p.Thickness); depth > 0 {
		sigma += p.SigmaMax * math.Pow(depth/t, p.Exponent)
	}

	return sigma
}

// Stretched builds the diagonal operator over the full grid that scales
// a derivative along the given axis by the axis' stretch factors,
// broadcast across the orthogonal axis. The stagger selects integer or
// half-integer evaluation: EdgeX shifts the x-axis factors by 0.5,
// EdgeY the y-axis factors; CellCenter uses integer positions on both.
// Complexity: O(Nx×Ny).
func Stretched(d grid.Dims, axis operator.Axis, st grid.Stagger, omega float64, p Profile) (*operator.Matrix, error) {
	dx, dy := st.Offset()
	var (
		line []complex128
		err  error
	)
	if axis == operator.AxisX {
		line, err = SFactors(d.Nx, omega, p, dx)
	} else {
		line, err = SFactors(d.Ny, omega, p, dy)
	}
	if err != nil {
		return nil, err
	}

	diag := make([]complex128, d.N())
	for y := 0; y < d.Ny; y++ {
		for x := 0; x < d.Nx; x++ {
			if axis == operator.AxisX {
				diag[d.Index(x, y)] = line[x]
			} else {
				diag[d.Index(x, y)] = line[y]
			}
		}
	}

	return operator.Diag(diag), nil
}
