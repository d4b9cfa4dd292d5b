package pml

import "errors"

// Defaults for the absorbing profile. SigmaMax has no dimensionless
// default: the conventional choice 1/ω depends on the simulation
// frequency, so it is filled in by NewProfile.
const (
	// DefaultExponent is the power-law ramp exponent of σ inside the layer.
	DefaultExponent = 3.5
)

// ErrInvalidProfile indicates a negative thickness, a layer thicker
// than half the axis, or a non-positive ramp exponent.
var ErrInvalidProfile = errors.New("pml: invalid absorbing-layer profile")

// Profile describes the absorbing layer along one axis.
type Profile struct {
	// Thickness is the layer depth in cells on each edge (t_pml).
	// Zero disables absorption entirely: the operator is the identity.
	Thickness int
	// SigmaMax is the maximum conductivity reached at the outermost cell.
	SigmaMax float64
	// Exponent is the power-law ramp exponent.
	Exponent float64
}

// NewProfile returns the conventional profile for a simulation at
// angular frequency omega: thickness tPML, σmax = 1/ω, exponent 3.5.
func NewProfile(tPML int, omega float64) Profile {
	return Profile{
		Thickness: tPML,
		SigmaMax:  1 / omega,
		Exponent:  DefaultExponent,
	}
}

// validFor reports whether the profile fits an axis of n cells.
func (p Profile) validFor(n int) bool {
	if p.Thickness < 0 || 2*p.Thickness > n {
		return false
	}
	if p.Thickness > 0 && p.Exponent <= 0 {
		return false
	}

	return true
}
