// SPDX-License-Identifier: MIT

// Package solver provides a direct sparse factorization for the
// complex linear systems produced by the physics assembler.
//
// The system matrix contains the indefinite shift −ω²·I and is not
// diagonally dominant, so iterative methods are not guaranteed to
// converge; factorization is therefore LU with row partial pivoting,
// performed on a row-sparse working representation (PA = LU with
// columns in natural order). Factor once, then Solve any number of
// right-hand sides.
//
// An exactly (or numerically) singular matrix — resonance — surfaces
// as ErrSingularMatrix rather than silently producing NaN/Inf fields.
package solver
