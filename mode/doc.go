// Package mode computes guided eigenmodes of a slab waveguide
// cross-section for use as excitation and overlap profiles.
//
// For a structure uniform along x, the scalar Hz system admits
// separable solutions Hz(x,y) = φ(y)·e^{iβx}. Substituting into the
// discrete operator turns the x-differences into the scalar
// −μ = 2cosβ − 2 and leaves the dense transverse eigenproblem
//
//	diag(εx) · (−Dby·diag(1/εy)·Dfy − ω²·I) · φ = −μ·φ
//
// over the Ny transverse cells. The fundamental guided mode is the
// eigenpair with the largest μ admitting a real propagation constant
// β = acos(1 − μ/2); its Ey profile follows from the same field
// reconstruction used on solved fields.
//
// The discrete φ is an exact eigenvector of the solver's own
// discretization, so a launch built from it excites a single
// travelling mode with no discretization mismatch.
package mode
