// Package pml builds stretched-coordinate perfectly-matched-layer
// (PML) operators: diagonal complex factors
//
//	s(i) = 1 / (1 + i·σ(i)/ω)
//
// that attenuate outgoing waves near the domain edges. σ is zero
// throughout the interior and ramps up as a power law from the PML
// inner boundary to a maximum strength at the outermost cells of each
// edge, so waves decay exponentially inside the layer without a
// reflecting impedance step at the interface (to first order).
//
// The Ecurl and Hcurl operators sample the stretched coordinate at
// different staggered locations, so both the integer-offset and
// half-integer-offset variants are supported via grid.Stagger.
package pml
