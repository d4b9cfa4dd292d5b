package physics

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fdfd/grid"
	"github.com/katalvlaran/fdfd/operator"
	"github.com/katalvlaran/fdfd/pml"
)

// Config parameterizes one matrix assembly. It replaces the ambient
// grid/device globals of ad-hoc solver scripts: every operator builder
// receives the configuration explicitly.
type Config struct {
	// Dims is the full simulation extent.
	Dims grid.Dims
	// Omega is the angular frequency (positive).
	Omega float64
	// Boundary selects the shift policy: Periodic for the scalar Hz
	// formulation, Mirror for the coupled one.
	Boundary operator.Boundary
	// PML is the absorbing-layer profile applied on all four edges.
	PML pml.Profile
}

// ErrInvalidOmega indicates a non-positive angular frequency.
var ErrInvalidOmega = errors.New("physics: omega must be positive")

// Operators bundles the assembled system and the curls needed later
// for excitation and field reconstruction. Immutable once built.
type Operators struct {
	// A is the system matrix: n×n for the scalar formulation,
	// 2n×2n for the coupled one.
	A *operator.Matrix
	// Hcurl maps Hz (n) to the stacked E locations (2n).
	Hcurl *operator.Matrix
	// Ecurl maps stacked E (2n) back to Hz locations (n).
	Ecurl *operator.Matrix
	// Eps carries the staggered permittivity components.
	Eps *Components
	// Config echoes the assembly parameters.
	Config Config
}

// curls builds the four PML-scaled difference operators and stacks
// them into Hcurl and Ecurl. Forward differences land on half-integer
// positions, so they take the half-offset stretch factors; backward
// differences take the integer ones.
func curls(cfg Config) (hcurl, ecurl *operator.Matrix, err error) {
	d := cfg.Dims
	sxHalf, err := pml.Stretched(d, operator.AxisX, grid.EdgeX, cfg.Omega, cfg.PML)
	if err != nil {
		return nil, nil, err
	}
	syHalf, err := pml.Stretched(d, operator.AxisY, grid.EdgeY, cfg.Omega, cfg.PML)
	if err != nil {
		return nil, nil, err
	}
	sxInt, err := pml.Stretched(d, operator.AxisX, grid.CellCenter, cfg.Omega, cfg.PML)
	if err != nil {
		return nil, nil, err
	}
	syInt, err := pml.Stretched(d, operator.AxisY, grid.CellCenter, cfg.Omega, cfg.PML)
	if err != nil {
		return nil, nil, err
	}

	dfx, err := sxHalf.Mul(operator.ForwardDiff(d, operator.AxisX, cfg.Boundary))
	if err != nil {
		return nil, nil, err
	}
	dfy, err := syHalf.Mul(operator.ForwardDiff(d, operator.AxisY, cfg.Boundary))
	if err != nil {
		return nil, nil, err
	}
	dbx, err := sxInt.Mul(operator.BackwardDiff(d, operator.AxisX, cfg.Boundary))
	if err != nil {
		return nil, nil, err
	}
	dby, err := syInt.Mul(operator.BackwardDiff(d, operator.AxisY, cfg.Boundary))
	if err != nil {
		return nil, nil, err
	}

	hcurl, err = operator.VStack(dfy, dfx.Scale(-1))
	if err != nil {
		return nil, nil, err
	}
	ecurl, err = operator.HStack(dby.Scale(-1), dbx)
	if err != nil {
		return nil, nil, err
	}

	return hcurl, ecurl, nil
}

// Assemble builds the scalar Hz system
//
//	A = Ecurl · diag(1/[εy; εx]) · Hcurl − ω²·I
//
// over the n = Nx·Ny unknowns of the Hz field. eps is the cell-centered
// permittivity map, already padded to Dims.
func Assemble(cfg Config, eps *mat.Dense) (*Operators, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	comp, err := InterpEps(eps, cfg.Dims, cfg.Boundary)
	if err != nil {
		return nil, err
	}
	hcurl, ecurl, err := curls(cfg)
	if err != nil {
		return nil, err
	}

	mid := operator.Diag(inverted(comp.Stacked()))
	em, err := ecurl.Mul(mid)
	if err != nil {
		return nil, err
	}
	curlcurl, err := em.Mul(hcurl)
	if err != nil {
		return nil, err
	}
	w2 := complex(cfg.Omega*cfg.Omega, 0)
	a, err := curlcurl.Sub(operator.Identity(cfg.Dims.N()).Scale(w2))
	if err != nil {
		return nil, err
	}

	return &Operators{A: a, Hcurl: hcurl, Ecurl: ecurl, Eps: comp, Config: cfg}, nil
}

// AssembleCoupled builds the two-component system over the stacked
// unknown [Ex; Ey] (size 2n):
//
//	A = Hcurl · Ecurl − ω²·diag([εy; εx])
//
// The permittivity moves from the middle factor into the mass term —
// the one genuine convention difference between the formulations.
func AssembleCoupled(cfg Config, eps *mat.Dense) (*Operators, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	comp, err := InterpEps(eps, cfg.Dims, cfg.Boundary)
	if err != nil {
		return nil, err
	}
	hcurl, ecurl, err := curls(cfg)
	if err != nil {
		return nil, err
	}

	curlcurl, err := hcurl.Mul(ecurl)
	if err != nil {
		return nil, err
	}
	w2 := complex(cfg.Omega*cfg.Omega, 0)
	a, err := curlcurl.Sub(operator.Diag(comp.Stacked()).Scale(w2))
	if err != nil {
		return nil, err
	}

	return &Operators{A: a, Hcurl: hcurl, Ecurl: ecurl, Eps: comp, Config: cfg}, nil
}

func validate(cfg Config) error {
	if !cfg.Dims.Valid() {
		return fmt.Errorf("assemble on %dx%d grid: %w", cfg.Dims.Nx, cfg.Dims.Ny, grid.ErrInvalidDimensions)
	}
	if cfg.Omega <= 0 {
		return fmt.Errorf("assemble at omega=%v: %w", cfg.Omega, ErrInvalidOmega)
	}

	return nil
}
