package sim

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fdfd/field"
	"github.com/katalvlaran/fdfd/grid"
	"github.com/katalvlaran/fdfd/mode"
	"github.com/katalvlaran/fdfd/power"
)

// Tuning defaults, applied wherever the Spec leaves a field zero.
const (
	// DefaultInjectOffset places the source this many columns inboard
	// of the input absorbing layer.
	DefaultInjectOffset = 1
	// DefaultMargin separates measurement cross-sections from the
	// absorbing layers and from the source columns.
	DefaultMargin = 2
	// DefaultSections is the number of cross-sections averaged for each
	// power figure.
	DefaultSections = 3
)

// ErrBadSpec indicates a Spec missing its device map or input mode.
var ErrBadSpec = errors.New("sim: incomplete simulation spec")

// Spec describes one frequency-domain run. Eps is the device
// permittivity patch, centered and edge-replicated out to Dims before
// assembly, so it may be smaller than the full simulation extent.
type Spec struct {
	// Dims is the full simulation extent, absorbing layers included.
	Dims grid.Dims
	// Omega is the angular frequency.
	Omega float64
	// TPML is the absorbing-layer depth in cells on every edge.
	TPML int
	// Eps is the cell-centered relative-permittivity patch (Ny×Nx).
	Eps *mat.Dense
	// In is the launched mode; its Hz profile and β drive the source.
	In *mode.Mode
	// Out is the mode measured at the output. Nil means measure In.
	Out *mode.Mode

	// InjectOffset, Margin and Sections tune source and measurement
	// placement; zero selects the package default.
	InjectOffset int
	Margin       int
	Sections     int
}

// Result carries the solved fields and the power diagnostics.
type Result struct {
	// Field is the reconstructed (Ex, Ey, Hz) solution.
	Field *field.Field
	// Power is the output-mode overlap power averaged over the
	// measurement sections.
	Power float64
	// Samples are the per-section overlap powers behind Power.
	Samples []float64
	// InPower is the input-mode overlap power measured just after the
	// source, nominally 1 for a healthy launch.
	InPower float64
	// Flux is the box flux on the contour hugging the absorbing layers.
	Flux power.Flux
}

// normalized returns a copy with defaults filled in and the required
// fields checked.
func (s Spec) normalized() (Spec, error) {
	if s.Eps == nil || s.In == nil {
		return s, ErrBadSpec
	}
	if s.Out == nil {
		s.Out = s.In
	}
	if s.InjectOffset == 0 {
		s.InjectOffset = DefaultInjectOffset
	}
	if s.Margin == 0 {
		s.Margin = DefaultMargin
	}
	if s.Sections == 0 {
		s.Sections = DefaultSections
	}

	return s, nil
}
