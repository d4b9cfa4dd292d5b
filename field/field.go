package field

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fdfd/grid"
	"github.com/katalvlaran/fdfd/physics"
)

// Field is the steady-state solution on the full grid. Each component
// is an Ny×Nx complex array (rows are y, columns are x). Fields are
// derived once and never mutated afterwards.
type Field struct {
	Ex, Ey, Hz *mat.CDense
}

// Dims returns the grid extent of the field arrays.
func (f *Field) Dims() grid.Dims {
	r, c := f.Hz.Dims()

	return grid.Dims{Nx: c, Ny: r}
}

// Reconstruct recovers (Ex, Ey) from a solved Hz vector via
// E = (1/ω)·diag(1/ε)·Hcurl·Hz and reshapes all three components.
func Reconstruct(ops *physics.Operators, hz []complex128) (*Field, error) {
	d := ops.Config.Dims
	if len(hz) != d.N() {
		return nil, fmt.Errorf("reconstruct from Hz of length %d on %d-cell grid: %w", len(hz), d.N(), grid.ErrShapeMismatch)
	}
	e, err := ops.Hcurl.MulVec(hz)
	if err != nil {
		return nil, err
	}
	stacked := ops.Eps.Stacked()
	invOmega := complex(1/ops.Config.Omega, 0)
	for i := range e {
		e[i] *= invOmega / stacked[i]
	}

	return assemble(d, e[:d.N()], e[d.N():], hz)
}

// ReconstructCoupled recovers Hz from a solved [Ex;Ey] vector via the
// dual transform Hz = (1/ω)·Ecurl·[Ex;Ey].
func ReconstructCoupled(ops *physics.Operators, e []complex128) (*Field, error) {
	d := ops.Config.Dims
	if len(e) != 2*d.N() {
		return nil, fmt.Errorf("reconstruct from E of length %d on %d-cell grid: %w", len(e), d.N(), grid.ErrShapeMismatch)
	}
	hz, err := ops.Ecurl.MulVec(e)
	if err != nil {
		return nil, err
	}
	invOmega := complex(1/ops.Config.Omega, 0)
	for i := range hz {
		hz[i] *= invOmega
	}

	return assemble(d, e[:d.N()], e[d.N():], hz)
}

func assemble(d grid.Dims, ex, ey, hz []complex128) (*Field, error) {
	mx, err := Reshape(d, ex)
	if err != nil {
		return nil, err
	}
	my, err := Reshape(d, ey)
	if err != nil {
		return nil, err
	}
	mz, err := Reshape(d, hz)
	if err != nil {
		return nil, err
	}

	return &Field{Ex: mx, Ey: my, Hz: mz}, nil
}

// Reshape lifts a flattened vector into an Ny×Nx array following the
// grid's row-major (x-fastest) convention.
// Returns grid.ErrShapeMismatch if the length disagrees with dims.
func Reshape(d grid.Dims, v []complex128) (*mat.CDense, error) {
	if len(v) != d.N() {
		return nil, fmt.Errorf("reshape %d values into %dx%d: %w", len(v), d.Nx, d.Ny, grid.ErrShapeMismatch)
	}
	out := mat.NewCDense(d.Ny, d.Nx, nil)
	for y := 0; y < d.Ny; y++ {
		for x := 0; x < d.Nx; x++ {
			out.Set(y, x, v[d.Index(x, y)])
		}
	}

	return out, nil
}

// Column extracts cross-section x = col of a component as a dense
// transverse vector of length Ny.
func Column(m *mat.CDense, col int) []complex128 {
	r, _ := m.Dims()
	out := make([]complex128, r)
	for y := 0; y < r; y++ {
		out[y] = m.At(y, col)
	}

	return out
}
