// SPDX-License-Identifier: MIT

package operator

// Boundary selects how shift operators treat indices that leave the
// grid: wrap around (Periodic) or reflect back into range (Mirror).
// The primary Hz formulation uses Periodic; the coupled Ex/Ey
// formulation uses Mirror.
type Boundary int

const (
	// Periodic wraps out-of-range indices cyclically.
	Periodic Boundary = iota
	// Mirror reflects out-of-range indices back into the grid.
	Mirror
)

// String implements fmt.Stringer for diagnostics.
func (b Boundary) String() string {
	if b == Mirror {
		return "Mirror"
	}

	return "Periodic"
}

// Axis identifies a grid axis for difference operators.
type Axis int

const (
	// AxisX is the propagation axis (index varies fastest).
	AxisX Axis = iota
	// AxisY is the transverse axis.
	AxisY
)

// String implements fmt.Stringer for diagnostics.
func (a Axis) String() string {
	if a == AxisY {
		return "Y"
	}

	return "X"
}
