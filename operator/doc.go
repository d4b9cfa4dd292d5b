// SPDX-License-Identifier: MIT

// Package operator provides complex sparse linear operators over the
// flattened grid vector space. It supports:
//
//   - A compressed sparse row (CSR) Matrix with a triplet Builder
//   - Cyclic (Periodic) and reflecting (Mirror) shift operators
//   - Forward/backward finite-difference operators built from shifts
//   - Diagonal and identity operators
//   - Composition: Add, Sub, Scale, Mul, MulVec, HStack, VStack
//
// Every derivative, PML and material operator in the solver is diagonal
// or banded-sparse, and compositions of sparse operators remain sparse,
// so CSR is the single concrete representation used throughout.
//
// Boundary policy note: a Periodic shift is an exact permutation, so
// Shift(+s) composed with Shift(-s) is the identity everywhere. A
// Mirror shift reflects out-of-range indices back into the grid; the
// reflection folds two logical positions onto one cell at the edges,
// so the inverse-composition identity holds on interior cells only.
package operator
