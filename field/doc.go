// Package field recovers the full (Ex, Ey, Hz) field tuple from the
// solved unknown and reshapes flattened vectors into 2D arrays.
//
// For the scalar formulation the electric field follows from
// E = (1/ω)·diag(1/ε)·Hcurl·Hz; for the coupled formulation the dual
// reconstruction Hz = (1/ω)·Ecurl·[Ex;Ey] applies. Both are pure,
// stateless transforms: the only failure mode is a length mismatch,
// which indicates a construction bug upstream and surfaces as
// grid.ErrShapeMismatch immediately.
package field
