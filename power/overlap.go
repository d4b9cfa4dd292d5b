package power

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/fdfd/field"
	"github.com/katalvlaran/fdfd/grid"
)

// dot is the hermitian inner product ⟨u,v⟩ = Σ u[i]·conj(v[i]).
// gonum's cmplxs.Dot is unconjugated, which is exactly the wrong
// convention for projections, so the product is spelled out here.
func dot(u, v []complex128) complex128 {
	var acc complex128
	for i := range u {
		acc += u[i] * cmplx.Conj(v[i])
	}

	return acc
}

// Project returns the least-squares projection of v onto the mode
// profile m: (⟨v,m⟩/⟨m,m⟩)·m. A zero profile projects to zero.
// Complexity: O(len).
func Project(v, m []complex128) []complex128 {
	out := make([]complex128, len(v))
	norm := dot(m, m)
	if norm == 0 {
		return out
	}
	coeff := dot(v, m) / norm
	for i := range m {
		out[i] = coeff * m[i]
	}

	return out
}

// SectionPower evaluates the mode-overlap power on one cross-section:
// P = 0.5·Re⟨proj(Ey), proj(Hz)⟩.
func SectionPower(ey, hz, modeEy, modeHz []complex128) float64 {
	pe := Project(ey, modeEy)
	ph := Project(hz, modeHz)

	return 0.5 * real(dot(pe, ph))
}

// ModePower projects the field's Ey and Hz onto the output-mode
// profiles at every column in cols and returns the average along with
// the per-column samples for diagnostics.
// Returns grid.ErrInvalidDimensions for an empty column set or an
// out-of-range column, grid.ErrShapeMismatch for wrong profile lengths.
// Complexity: O(len(cols)·Ny).
func ModePower(f *field.Field, modeEy, modeHz []complex128, cols []int) (avg float64, samples []float64, err error) {
	d := f.Dims()
	if len(cols) == 0 {
		return 0, nil, fmt.Errorf("mode power with no cross-sections: %w", grid.ErrInvalidDimensions)
	}
	if len(modeEy) != d.Ny || len(modeHz) != d.Ny {
		return 0, nil, fmt.Errorf("mode power with %d/%d-point profiles on %d-row grid: %w",
			len(modeEy), len(modeHz), d.Ny, grid.ErrShapeMismatch)
	}
	samples = make([]float64, len(cols))
	for k, c := range cols {
		if c < 0 || c >= d.Nx {
			return 0, nil, fmt.Errorf("mode power at column %d of %d: %w", c, d.Nx, grid.ErrInvalidDimensions)
		}
		samples[k] = SectionPower(field.Column(f.Ey, c), field.Column(f.Hz, c), modeEy, modeHz)
		avg += samples[k]
	}
	avg /= float64(len(cols))

	return avg, samples, nil
}

// SectionRange returns the columns [hi-count, hi) conventionally used
// for output-power averaging: count lines ending just inboard of the
// output PML (hi = Nx − t_pml − margin).
func SectionRange(d grid.Dims, tPML, margin, count int) []int {
	hi := d.Nx - tPML - margin
	cols := make([]int, 0, count)
	for c := hi - count; c < hi; c++ {
		cols = append(cols, c)
	}

	return cols
}
