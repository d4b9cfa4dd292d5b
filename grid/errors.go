package grid

import "errors"

var (
	// ErrInvalidDimensions indicates a requested grid smaller than the
	// input permittivity region, or a non-positive grid size.
	ErrInvalidDimensions = errors.New("grid: target dimensions smaller than input or non-positive")
	// ErrShapeMismatch indicates an internal reshape whose element count
	// disagrees with the grid size. It signals a construction bug in an
	// upstream stage, not a user error.
	ErrShapeMismatch = errors.New("grid: vector length does not match grid dimensions")
)
