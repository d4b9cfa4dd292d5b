package grid

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Pad expands a permittivity patch to the full simulation extent by
// replicating the first/last row and first/last column outward.
// The patch is stored Ny×Nx (rows are y, columns are x); the padded
// result has dims.Ny rows and dims.Nx columns. Padding amounts per
// axis: floor(diff/2) on the low side, ceil(diff/2) on the high side.
//
// Returns ErrInvalidDimensions if dims is non-positive or smaller than
// the patch on either axis. The input is never mutated.
// Complexity: O(Nx×Ny) time and memory.
func Pad(patch *mat.Dense, dims Dims) (*mat.Dense, error) {
	if !dims.Valid() {
		return nil, fmt.Errorf("pad to %dx%d: %w", dims.Nx, dims.Ny, ErrInvalidDimensions)
	}
	h, w := patch.Dims()
	if h > dims.Ny || w > dims.Nx {
		return nil, fmt.Errorf("pad %dx%d patch to %dx%d: %w", w, h, dims.Nx, dims.Ny, ErrInvalidDimensions)
	}
	lowX := (dims.Nx - w) / 2
	lowY := (dims.Ny - h) / 2

	out := mat.NewDense(dims.Ny, dims.Nx, nil)
	for y := 0; y < dims.Ny; y++ {
		sy := clamp(y-lowY, 0, h-1)
		for x := 0; x < dims.Nx; x++ {
			sx := clamp(x-lowX, 0, w-1)
			out.Set(y, x, patch.At(sy, sx))
		}
	}

	return out, nil
}

// PadOffsets reports where the patch interior lands inside the padded
// domain: the low-side padding amounts per axis. Useful for callers
// that need to locate the device region after padding.
// Complexity: O(1).
func PadOffsets(patchW, patchH int, dims Dims) (offX, offY int) {
	return (dims.Nx - patchW) / 2, (dims.Ny - patchH) / 2
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
