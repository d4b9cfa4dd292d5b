package source

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/fdfd/grid"
	"github.com/katalvlaran/fdfd/physics"
)

// degenerateTol bounds |1 − e^{i2β}| below which the one-way
// normalization is treated as singular.
const degenerateTol = 1e-9

var (
	// ErrDegenerateMode indicates β at or near cutoff, where the
	// one-way cancellation between the two source columns breaks down.
	ErrDegenerateMode = errors.New("source: degenerate mode, beta at or near cutoff")
)

// twoColumn builds the shared one-way pattern: columns col and col−1
// carry {φ, −φ·e^{iβ}}, scaled by −2i·sinβ/(1−e^{2iβ}). The sinβ in
// the numerator is the discrete dispersion factor: the grid's
// travelling wave advances by e^{iβ} per cell, so the excited wave
// carries exactly the profile's amplitude (the continuous-β factor
// would overshoot by β/sinβ).
func twoColumn(d grid.Dims, profile []complex128, beta float64, col int) ([]complex128, error) {
	if len(profile) != d.Ny {
		return nil, fmt.Errorf("one-way source with %d-point profile on %d-row grid: %w", len(profile), d.Ny, grid.ErrShapeMismatch)
	}
	if col < 1 || col >= d.Nx {
		return nil, fmt.Errorf("one-way source at column %d of %d: %w", col, d.Nx, grid.ErrShapeMismatch)
	}

	phase := cmplx.Exp(complex(0, beta))
	denom := 1 - phase*phase // 1 − e^{i2β}
	if cmplx.Abs(denom) < degenerateTol {
		return nil, fmt.Errorf("one-way source with beta=%v: %w", beta, ErrDegenerateMode)
	}
	norm := complex(0, -2*math.Sin(beta)) / denom

	b := make([]complex128, d.N())
	for y := 0; y < d.Ny; y++ {
		b[d.Index(col, y)] = norm * profile[y]
		b[d.Index(col-1, y)] = norm * -profile[y] * phase
	}

	return b, nil
}

// OneWay builds the excitation vector (length Nx·Ny) for a mode with
// transverse Hz profile (length Ny) and propagation constant beta,
// injected at column col and travelling toward +x. eps supplies the
// local permittivity component used for the current conversion. A
// power-normalized mode launches unit power.
//
// Returns ErrDegenerateMode near cutoff and grid.ErrShapeMismatch if
// the profile length or injection column do not fit the grid.
// Complexity: O(Nx·Ny) (allocation-dominated; 2·Ny cells are written).
func OneWay(d grid.Dims, profile []complex128, beta float64, col int, eps *physics.Components) ([]complex128, error) {
	if len(eps.X) != d.N() {
		return nil, fmt.Errorf("one-way source: permittivity length %d on %d-cell grid: %w", len(eps.X), d.N(), grid.ErrShapeMismatch)
	}
	b, err := twoColumn(d, profile, beta, col)
	if err != nil {
		return nil, err
	}
	for y := 0; y < d.Ny; y++ {
		i := d.Index(col, y)
		j := d.Index(col-1, y)
		b[i] /= eps.X[i]
		b[j] /= eps.X[j]
	}

	return b, nil
}

// OneWayCurrent is the electric-current analog of OneWay for the
// coupled formulation: the same two-column pattern built from the
// mode's Ey profile, without the permittivity conversion. The caller
// embeds the returned n-vector in the Ey block of the stacked
// right-hand side.
func OneWayCurrent(d grid.Dims, profile []complex128, beta float64, col int) ([]complex128, error) {
	return twoColumn(d, profile, beta, col)
}
