package source_test

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fdfd/grid"
	"github.com/katalvlaran/fdfd/operator"
	"github.com/katalvlaran/fdfd/physics"
	"github.com/katalvlaran/fdfd/source"
)

func components(t *testing.T, d grid.Dims, v float64) *physics.Components {
	t.Helper()
	data := make([]float64, d.N())
	for i := range data {
		data[i] = v
	}
	c, err := physics.InterpEps(mat.NewDense(d.Ny, d.Nx, data), d, operator.Periodic)
	if err != nil {
		t.Fatalf("InterpEps error: %v", err)
	}

	return c
}

// TestOneWay_Structure verifies the two-column layout and the analytic
// cancellation phase between them.
func TestOneWay_Structure(t *testing.T) {
	d := grid.Dims{Nx: 10, Ny: 4}
	eps := components(t, d, 2)
	profile := []complex128{0, 1, 2i, 0}
	const (
		beta = 0.8
		col  = 3
	)
	b, err := source.OneWay(d, profile, beta, col, eps)
	if err != nil {
		t.Fatalf("OneWay error: %v", err)
	}
	// Nonzero only on columns col and col-1, and only where φ ≠ 0.
	for y := 0; y < d.Ny; y++ {
		for x := 0; x < d.Nx; x++ {
			v := b[d.Index(x, y)]
			onSource := (x == col || x == col-1) && profile[y] != 0
			if onSource && v == 0 {
				t.Errorf("expected nonzero at (%d,%d)", x, y)
			}
			if !onSource && v != 0 {
				t.Errorf("unexpected nonzero %v at (%d,%d)", v, x, y)
			}
		}
	}
	// The trailing column is −e^{iβ} times the leading one (uniform ε).
	phase := cmplx.Exp(complex(0, beta))
	for y := 0; y < d.Ny; y++ {
		lead := b[d.Index(col, y)]
		trail := b[d.Index(col-1, y)]
		if diff := cmplx.Abs(trail + phase*lead); diff > 1e-15 {
			t.Errorf("cancellation phase off at y=%d: |trail + e^{iβ}·lead| = %g", y, diff)
		}
	}
}

// TestOneWay_NormalizationScale pins the closed-form scale on a single
// cell. The discrete factor −2i·sinβ/(1−e^{2iβ}) has unit magnitude
// for every β, which is what keeps the launched amplitude independent
// of the propagation constant.
func TestOneWay_NormalizationScale(t *testing.T) {
	d := grid.Dims{Nx: 4, Ny: 1}
	eps := components(t, d, 1)
	for _, beta := range []float64{0.3, 0.8, 1.1, 2.4} {
		b, err := source.OneWay(d, []complex128{1}, beta, 2, eps)
		if err != nil {
			t.Fatalf("OneWay error at beta=%v: %v", beta, err)
		}
		phase := cmplx.Exp(complex(0, beta))
		want := complex(0, -2*math.Sin(beta)) / (1 - phase*phase)
		lead := b[d.Index(2, 0)]
		if diff := cmplx.Abs(lead - want); diff > 1e-15 {
			t.Errorf("beta=%v: lead amplitude = %v; want %v", beta, lead, want)
		}
		if diff := math.Abs(cmplx.Abs(lead) - 1); diff > 1e-14 {
			t.Errorf("beta=%v: |lead| = %v; want 1", beta, cmplx.Abs(lead))
		}
	}
}

// TestOneWayCurrent_MatchesMagneticPattern: the electric-current
// variant is the magnetic one without the permittivity conversion.
func TestOneWayCurrent_MatchesMagneticPattern(t *testing.T) {
	d := grid.Dims{Nx: 8, Ny: 3}
	eps := components(t, d, 2)
	profile := []complex128{1, 2i, -1}
	const (
		beta = 0.9
		col  = 4
	)
	bc, err := source.OneWayCurrent(d, profile, beta, col)
	if err != nil {
		t.Fatalf("OneWayCurrent error: %v", err)
	}
	bm, err := source.OneWay(d, profile, beta, col, eps)
	if err != nil {
		t.Fatalf("OneWay error: %v", err)
	}
	for i := range bc {
		if diff := cmplx.Abs(bc[i] - 2*bm[i]); diff > 1e-15 {
			t.Errorf("entry %d: current %v vs magnetic %v (ε=2)", i, bc[i], bm[i])
		}
	}

	if _, err = source.OneWayCurrent(d, profile, 0, col); !errors.Is(err, source.ErrDegenerateMode) {
		t.Errorf("beta=0: error = %v; want ErrDegenerateMode", err)
	}
	if _, err = source.OneWayCurrent(d, profile[:1], beta, col); !errors.Is(err, grid.ErrShapeMismatch) {
		t.Errorf("short profile: error = %v; want ErrShapeMismatch", err)
	}
	if _, err = source.OneWayCurrent(d, profile, beta, 0); !errors.Is(err, grid.ErrShapeMismatch) {
		t.Errorf("col=0: error = %v; want ErrShapeMismatch", err)
	}
}

// TestOneWay_EpsDivision: doubling ε halves the equivalent current.
func TestOneWay_EpsDivision(t *testing.T) {
	d := grid.Dims{Nx: 6, Ny: 2}
	one := components(t, d, 1)
	two := components(t, d, 2)
	profile := []complex128{1, 1}
	b1, err := source.OneWay(d, profile, 0.7, 3, one)
	if err != nil {
		t.Fatalf("OneWay error: %v", err)
	}
	b2, err := source.OneWay(d, profile, 0.7, 3, two)
	if err != nil {
		t.Fatalf("OneWay error: %v", err)
	}
	i := d.Index(3, 0)
	if diff := cmplx.Abs(b1[i] - 2*b2[i]); diff > 1e-15 {
		t.Errorf("ε division broken: %v vs %v", b1[i], b2[i])
	}
}

// TestOneWay_DegenerateMode: β = 0 and β = π both make e^{i2β} ≈ 1.
func TestOneWay_DegenerateMode(t *testing.T) {
	d := grid.Dims{Nx: 6, Ny: 2}
	eps := components(t, d, 1)
	for _, beta := range []float64{0, 1e-12, math.Pi} {
		if _, err := source.OneWay(d, []complex128{1, 1}, beta, 3, eps); !errors.Is(err, source.ErrDegenerateMode) {
			t.Errorf("beta=%v: error = %v; want ErrDegenerateMode", beta, err)
		}
	}
}

// TestOneWay_ShapeErrors rejects mismatched profiles and bad columns.
func TestOneWay_ShapeErrors(t *testing.T) {
	d := grid.Dims{Nx: 6, Ny: 3}
	eps := components(t, d, 1)
	if _, err := source.OneWay(d, []complex128{1}, 0.5, 3, eps); !errors.Is(err, grid.ErrShapeMismatch) {
		t.Errorf("short profile: error = %v; want ErrShapeMismatch", err)
	}
	for _, col := range []int{0, -1, 6} {
		if _, err := source.OneWay(d, []complex128{1, 1, 1}, 0.5, col, eps); !errors.Is(err, grid.ErrShapeMismatch) {
			t.Errorf("col=%d: error = %v; want ErrShapeMismatch", col, err)
		}
	}
}
