// Package grid provides the geometric primitives shared by every stage
// of the FDFD pipeline. It supports:
//
//   - Simulation dimensions (Dims) with row-major flattening of (x,y)
//     cell coordinates into vector indices
//   - Yee-grid staggering offsets (cell center, x-edge, y-edge)
//   - Expansion of a small permittivity patch to the full simulation
//     domain by symmetric edge-replication padding
//
// All downstream packages (operator, pml, physics, field) index the
// flattened vector space through Dims, so the x-fastest convention is
// fixed here once: index(x,y) = y*Nx + x.
package grid
