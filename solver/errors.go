// SPDX-License-Identifier: MIT

package solver

import "errors"

var (
	// ErrSingularMatrix indicates the matrix is numerically singular at
	// the factorization step (no acceptable pivot in some column).
	ErrSingularMatrix = errors.New("solver: matrix is singular")
	// ErrNonSquare indicates a factorization request for a non-square matrix.
	ErrNonSquare = errors.New("solver: matrix is not square")
	// ErrBadRHS indicates a right-hand side whose length differs from the
	// factored dimension.
	ErrBadRHS = errors.New("solver: right-hand side length mismatch")
)
