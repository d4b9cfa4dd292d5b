// SPDX-License-Identifier: MIT
// Package operator: sentinel error set. All public operations return
// these sentinels (optionally wrapped with context via fmt.Errorf and
// %w); callers match with errors.Is. Panics are reserved for programmer
// errors such as out-of-range construction indices.

package operator

import "errors"

var (
	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Add with different shapes, Mul where a.Cols != b.Rows, or
	// MulVec with a wrong-length vector.
	ErrDimensionMismatch = errors.New("operator: dimension mismatch")

	// ErrBadShape is returned when a requested shape is invalid
	// (rows <= 0 or cols <= 0).
	ErrBadShape = errors.New("operator: invalid shape")
)
