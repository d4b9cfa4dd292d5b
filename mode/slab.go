package mode

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// imagTol bounds the relative imaginary part accepted on a physically
// real transverse eigenvalue.
const imagTol = 1e-9

var (
	// ErrNoGuidedMode indicates the profile supports no propagating mode
	// at the requested frequency.
	ErrNoGuidedMode = errors.New("mode: no guided mode found")
	// ErrBadProfile indicates a transverse profile too short to discretize.
	ErrBadProfile = errors.New("mode: transverse profile needs at least 3 cells")
)

// Mode is one guided waveguide mode, normalized so the Hz profile's
// largest-magnitude sample is 1 (and real). Immutable.
type Mode struct {
	// Hz is the transverse magnetic-field profile φ(y).
	Hz []complex128
	// Ey is the matching transverse electric-field profile.
	Ey []complex128
	// Beta is the propagation phase per cell.
	Beta float64
}

// Power returns the cross-section power a unit-amplitude excitation of
// the mode carries: 0.5·Re Σ Ey·conj(Hz). Positive for a forward mode.
func (m *Mode) Power() float64 {
	var acc complex128
	for y := range m.Hz {
		acc += m.Ey[y] * cmplx.Conj(m.Hz[y])
	}

	return 0.5 * real(acc)
}

// Normalized returns a copy scaled to carry unit power, the form the
// one-way launch expects. A mode with non-positive power is returned
// unchanged.
func (m *Mode) Normalized() *Mode {
	p := m.Power()
	if p <= 0 {
		return m
	}
	c := complex(1/math.Sqrt(p), 0)
	out := &Mode{
		Hz:   make([]complex128, len(m.Hz)),
		Ey:   make([]complex128, len(m.Ey)),
		Beta: m.Beta,
	}
	for y := range m.Hz {
		out.Hz[y] = c * m.Hz[y]
		out.Ey[y] = c * m.Ey[y]
	}

	return out
}

// Solve computes the fundamental guided mode of the given transverse
// permittivity line at angular frequency omega, assuming periodic
// transverse boundaries (the scalar formulation's policy).
// Returns ErrNoGuidedMode when every transverse eigenvalue is
// evanescent or aliased past the grid's propagation band.
// Complexity: O(Ny³) (dense eigendecomposition).
func Solve(epsLine []float64, omega float64) (*Mode, error) {
	ny := len(epsLine)
	if ny < 3 {
		return nil, fmt.Errorf("solve mode over %d cells: %w", ny, ErrBadProfile)
	}
	if omega <= 0 {
		return nil, fmt.Errorf("solve mode at omega=%v: %w", omega, ErrNoGuidedMode)
	}

	// Staggered permittivity lines for a structure uniform along x:
	// the x-average equals the line itself; the y-average pairs
	// forward neighbors with periodic wrap.
	epsX := epsLine
	invEpsY := make([]float64, ny)
	for y := 0; y < ny; y++ {
		invEpsY[y] = 2 / (epsLine[y] + epsLine[(y+1)%ny])
	}

	// T = diag(εx)·(−Dby·diag(1/εy)·Dfy − ω²·I), dense Ny×Ny.
	t := mat.NewDense(ny, ny, nil)
	for y := 0; y < ny; y++ {
		up := (y + 1) % ny
		down := (y - 1 + ny) % ny
		t.Set(y, up, -epsX[y]*invEpsY[y])
		t.Set(y, down, -epsX[y]*invEpsY[down])
		t.Set(y, y, epsX[y]*(invEpsY[y]+invEpsY[down]-omega*omega))
	}

	var eig mat.Eigen
	if !eig.Factorize(t, mat.EigenRight) {
		return nil, fmt.Errorf("solve mode: eigendecomposition failed: %w", ErrNoGuidedMode)
	}
	vals := eig.Values(nil)

	// Fundamental guided mode: largest μ = −Re(ν) still inside the
	// discrete propagation band μ < 4 (real β), with ν essentially real.
	scale := 0.0
	for _, v := range vals {
		if a := cmplx.Abs(v); a > scale {
			scale = a
		}
	}
	best, bestMu := -1, 0.0
	for i, v := range vals {
		if math.Abs(imag(v)) > imagTol*scale {
			continue
		}
		mu := -real(v)
		if mu > bestMu && mu < 4 {
			best, bestMu = i, mu
		}
	}
	if best < 0 {
		return nil, fmt.Errorf("solve mode at omega=%v: %w", omega, ErrNoGuidedMode)
	}
	beta := math.Acos(1 - bestMu/2)

	var vecs mat.CDense
	eig.VectorsTo(&vecs)
	hz := make([]complex128, ny)
	var pivot complex128
	for y := 0; y < ny; y++ {
		hz[y] = vecs.At(y, best)
		if cmplx.Abs(hz[y]) > cmplx.Abs(pivot) {
			pivot = hz[y]
		}
	}
	for y := range hz {
		hz[y] /= pivot
	}

	// Ey from the reconstruction rule: Ey = −(e^{iβ}−1)/(ω·εx)·Hz.
	ey := make([]complex128, ny)
	lead := -(cmplx.Exp(complex(0, beta)) - 1) / complex(omega, 0)
	for y := range ey {
		ey[y] = lead * hz[y] / complex(epsX[y], 0)
	}

	return &Mode{Hz: hz, Ey: ey, Beta: beta}, nil
}
