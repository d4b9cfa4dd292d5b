package mode_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fdfd/grid"
	"github.com/katalvlaran/fdfd/mode"
	"github.com/katalvlaran/fdfd/operator"
	"github.com/katalvlaran/fdfd/physics"
	"github.com/katalvlaran/fdfd/pml"
)

// slabLine builds a step-index profile: cladding epsClad with a
// centered core of the given width at epsCore.
func slabLine(ny, width int, epsClad, epsCore float64) []float64 {
	line := make([]float64, ny)
	lo := (ny - width) / 2
	for y := range line {
		line[y] = epsClad
		if y >= lo && y < lo+width {
			line[y] = epsCore
		}
	}

	return line
}

// TestSolve_UniformMedium: in a homogeneous medium the fundamental
// eigenpair is the constant profile with μ = ω²·ε.
func TestSolve_UniformMedium(t *testing.T) {
	const (
		ny    = 16
		eps   = 4.0
		omega = 0.5
	)
	m, err := mode.Solve(slabLine(ny, 0, eps, eps), omega)
	require.NoError(t, err)

	wantBeta := math.Acos(1 - omega*omega*eps/2) // μ = 1 → β = π/3
	require.InDelta(t, wantBeta, m.Beta, 1e-9)

	wantEy := -(cmplx.Exp(complex(0, m.Beta)) - 1) / complex(omega*eps, 0)
	for y := 0; y < ny; y++ {
		require.InDelta(t, 0, cmplx.Abs(m.Hz[y]-1), 1e-8, "Hz[%d]", y)
		require.InDelta(t, 0, cmplx.Abs(m.Ey[y]-wantEy), 1e-8, "Ey[%d]", y)
	}
}

// TestSolve_SlabGuide: a high-contrast core confines the fundamental
// mode, with β between the cladding and core plane-wave limits.
func TestSolve_SlabGuide(t *testing.T) {
	const (
		ny    = 40
		width = 8
		omega = 0.2
	)
	line := slabLine(ny, width, 1, 12)
	m, err := mode.Solve(line, omega)
	require.NoError(t, err)

	betaClad := math.Acos(1 - omega*omega*1/2)
	betaCore := math.Acos(1 - omega*omega*12/2)
	require.Greater(t, m.Beta, betaClad, "guided β must exceed the cladding light line")
	require.Less(t, m.Beta, betaCore, "guided β must stay below the core plane wave")

	peak, peakAbs := 0, 0.0
	for y, v := range m.Hz {
		if a := cmplx.Abs(v); a > peakAbs {
			peak, peakAbs = y, a
		}
	}
	lo := (ny - width) / 2
	require.GreaterOrEqual(t, peak, lo, "peak inside the core")
	require.Less(t, peak, lo+width, "peak inside the core")
	require.Less(t, cmplx.Abs(m.Hz[0]), 0.05, "evanescent tail at the bottom edge")
	require.Less(t, cmplx.Abs(m.Hz[ny-1]), 0.05, "evanescent tail at the top edge")

	for y := range m.Ey {
		want := -(cmplx.Exp(complex(0, m.Beta)) - 1) / complex(omega*line[y], 0) * m.Hz[y]
		require.InDelta(t, 0, cmplx.Abs(m.Ey[y]-want), 1e-12, "Ey[%d]", y)
	}
}

// TestSolve_AnnihilatesAssembledOperator: Hz(x,y) = φ(y)·e^{iβx} lies
// in the null space of the full 2D system away from the x-wrap, which
// is the property the excitation machinery relies on.
func TestSolve_AnnihilatesAssembledOperator(t *testing.T) {
	const omega = 0.2
	d := grid.Dims{Nx: 12, Ny: 40}
	line := slabLine(d.Ny, 8, 1, 12)
	m, err := mode.Solve(line, omega)
	require.NoError(t, err)

	eps := mat.NewDense(d.Ny, d.Nx, nil)
	for y := 0; y < d.Ny; y++ {
		for x := 0; x < d.Nx; x++ {
			eps.Set(y, x, line[y])
		}
	}
	ops, err := physics.Assemble(physics.Config{Dims: d, Omega: omega, Boundary: operator.Periodic, PML: pml.Profile{}}, eps)
	require.NoError(t, err)

	hz := make([]complex128, d.N())
	for y := 0; y < d.Ny; y++ {
		for x := 0; x < d.Nx; x++ {
			hz[d.Index(x, y)] = m.Hz[y] * cmplx.Exp(complex(0, m.Beta*float64(x)))
		}
	}
	res, err := ops.A.MulVec(hz)
	require.NoError(t, err)

	// Rows touching columns 0 and Nx-1 see the non-periodic phase seam;
	// everything strictly inside must vanish.
	for y := 0; y < d.Ny; y++ {
		for x := 2; x < d.Nx-2; x++ {
			require.InDelta(t, 0, cmplx.Abs(res[d.Index(x, y)]), 1e-8, "residual at (%d,%d)", x, y)
		}
	}
}

// TestNormalized_UnitPower: normalization rescales Hz and Ey jointly so
// the cross-section power lands on 1, leaving β untouched.
func TestNormalized_UnitPower(t *testing.T) {
	m, err := mode.Solve(slabLine(40, 8, 1, 12), 0.2)
	require.NoError(t, err)
	require.Greater(t, m.Power(), 0.0, "forward mode carries positive power")

	n := m.Normalized()
	require.InDelta(t, 1, n.Power(), 1e-12)
	require.Equal(t, m.Beta, n.Beta)

	// Hz/Ey ratio is shape, and shape survives normalization.
	for y := range m.Hz {
		if cmplx.Abs(m.Hz[y]) < 1e-6 {
			continue
		}
		require.InDelta(t, 0, cmplx.Abs(m.Ey[y]/m.Hz[y]-n.Ey[y]/n.Hz[y]), 1e-12, "ratio at %d", y)
	}
}

// TestSolve_InputValidation covers the degenerate inputs.
func TestSolve_InputValidation(t *testing.T) {
	_, err := mode.Solve([]float64{1, 1}, 0.5)
	require.ErrorIs(t, err, mode.ErrBadProfile)
	_, err = mode.Solve(slabLine(10, 0, 1, 1), 0)
	require.ErrorIs(t, err, mode.ErrNoGuidedMode)
	_, err = mode.Solve(slabLine(10, 0, 1, 1), -2)
	require.ErrorIs(t, err, mode.ErrNoGuidedMode)
}
