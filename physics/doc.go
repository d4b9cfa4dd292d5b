// Package physics assembles the discretized frequency-domain Maxwell
// operator for the Hz-polarized 2D problem. It supports:
//
//   - Splitting a cell-centered permittivity map into the two
//     half-grid-shifted staggered components sampled by Ex and Ey
//   - Building the PML-scaled curl operators Ecurl and Hcurl
//   - Composing the scalar Hz system A = Ecurl·diag(1/ε)·Hcurl − ω²·I
//   - Composing the coupled Ex/Ey system A = Hcurl·Ecurl − ω²·diag(ε)
//
// The two formulations share every operator; they differ in where the
// permittivity enters (middle factor vs mass term), in unknown size
// (Nx·Ny vs 2·Nx·Ny) and in the boundary policy they are conventionally
// run with (Periodic vs Mirror). For lossless media with zero PML
// thickness the scalar system reduces exactly to the five-point
// Laplacian stencil shifted by −ω².
//
// Staggering convention (see grid.Stagger): Hz lives at cell centers,
// Ex at (x, y+½) with the y-averaged ε, Ey at (x+½, y) with the
// x-averaged ε. Hcurl = [Dfy; −Dfx] uses forward differences and
// half-integer PML factors; Ecurl = [−Dby, Dbx] uses backward
// differences and integer factors.
package physics
