// Package grid defines core types for the grid subpackage of
// github.com/katalvlaran/fdfd.
package grid

// Dims holds the full simulation extent in grid cells.
// Nx counts cells along the propagation axis (x), Ny along the
// transverse axis (y).
type Dims struct {
	Nx, Ny int
}

// N returns the size of the flattened scalar-field vector space, Nx*Ny.
// Complexity: O(1).
func (d Dims) N() int { return d.Nx * d.Ny }

// Valid reports whether both extents are positive.
// Complexity: O(1).
func (d Dims) Valid() bool { return d.Nx > 0 && d.Ny > 0 }

// Index maps cell (x,y) to its row-major vector index: y*Nx + x.
// Complexity: O(1).
func (d Dims) Index(x, y int) int { return y*d.Nx + x }

// Coordinate converts a vector index back to (x,y).
// Complexity: O(1).
func (d Dims) Coordinate(i int) (x, y int) { return i % d.Nx, i / d.Nx }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (d Dims) InBounds(x, y int) bool {
	return x >= 0 && x < d.Nx && y >= 0 && y < d.Ny
}

// Stagger identifies the sub-cell sampling position of a field
// quantity on the Yee grid. The two curl operators and the two
// permittivity components sample space at different Stagger values;
// keeping the enum central keeps interpolation, shifts and PML
// evaluation consistent with each other.
type Stagger int

const (
	// CellCenter samples at integer coordinates (x, y). Hz lives here.
	CellCenter Stagger = iota
	// EdgeX samples at (x+0.5, y). Ey and the x-averaged permittivity live here.
	EdgeX
	// EdgeY samples at (x, y+0.5). Ex and the y-averaged permittivity live here.
	EdgeY
)

// Offset returns the sub-cell coordinate offset of the staggered
// position along each axis.
// Complexity: O(1).
func (s Stagger) Offset() (dx, dy float64) {
	switch s {
	case EdgeX:
		return 0.5, 0
	case EdgeY:
		return 0, 0.5
	default:
		return 0, 0
	}
}

// String implements fmt.Stringer for diagnostics.
func (s Stagger) String() string {
	switch s {
	case EdgeX:
		return "EdgeX"
	case EdgeY:
		return "EdgeY"
	default:
		return "CellCenter"
	}
}
