package sim

import (
	"github.com/katalvlaran/fdfd/field"
	"github.com/katalvlaran/fdfd/grid"
	"github.com/katalvlaran/fdfd/operator"
	"github.com/katalvlaran/fdfd/physics"
	"github.com/katalvlaran/fdfd/pml"
	"github.com/katalvlaran/fdfd/power"
	"github.com/katalvlaran/fdfd/solver"
	"github.com/katalvlaran/fdfd/source"
)

// Solve runs the scalar Hz formulation end to end: the device patch is
// padded to the full extent, the curl-curl system assembled with
// periodic shifts and the standard PML profile, the input mode launched
// one-way at the left edge, and the direct factorization solved once.
//
// Errors from every stage pass through wrapped: expect the sentinel
// kinds of grid, physics, source and solver.
// Complexity: dominated by solver.Factor on the n = Nx·Ny system.
func Solve(spec Spec) (*Result, error) {
	sp, err := spec.normalized()
	if err != nil {
		return nil, err
	}
	eps, err := grid.Pad(sp.Eps, sp.Dims)
	if err != nil {
		return nil, err
	}
	cfg := physics.Config{
		Dims:     sp.Dims,
		Omega:    sp.Omega,
		Boundary: operator.Periodic,
		PML:      pml.NewProfile(sp.TPML, sp.Omega),
	}
	ops, err := physics.Assemble(cfg, eps)
	if err != nil {
		return nil, err
	}

	col := sp.TPML + sp.InjectOffset
	b, err := source.OneWay(sp.Dims, sp.In.Hz, sp.In.Beta, col, ops.Eps)
	if err != nil {
		return nil, err
	}

	lu, err := solver.Factor(ops.A)
	if err != nil {
		return nil, err
	}
	x, err := lu.Solve(b)
	if err != nil {
		return nil, err
	}
	f, err := field.Reconstruct(ops, x)
	if err != nil {
		return nil, err
	}

	return measure(sp, f, col)
}

// measure evaluates the power diagnostics shared by both formulations.
func measure(sp Spec, f *field.Field, col int) (*Result, error) {
	outCols := power.SectionRange(sp.Dims, sp.TPML, sp.Margin, sp.Sections)
	avg, samples, err := power.ModePower(f, sp.Out.Ey, sp.Out.Hz, outCols)
	if err != nil {
		return nil, err
	}

	inCols := make([]int, 0, sp.Sections)
	for c := col + sp.Margin; c < col+sp.Margin+sp.Sections; c++ {
		inCols = append(inCols, c)
	}
	inAvg, _, err := power.ModePower(f, sp.In.Ey, sp.In.Hz, inCols)
	if err != nil {
		return nil, err
	}

	fl, err := power.BoxFlux(f, sp.TPML)
	if err != nil {
		return nil, err
	}

	return &Result{Field: f, Power: avg, Samples: samples, InPower: inAvg, Flux: fl}, nil
}
