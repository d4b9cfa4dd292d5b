// Package sim wires the full simulation pipeline behind a single call:
//
//	pad ε → assemble → excite → factor → solve → reconstruct → measure
//
// Two entry points share one Spec. Solve runs the scalar Hz formulation
// with periodic shifts and a magnetic-current launch; SolveCoupled runs
// the two-component [Ex;Ey] formulation with mirror shifts and an
// electric-current launch. Both return the reconstructed fields plus
// the mode-overlap output power and the closed-contour box flux, so a
// caller can check energy accounting without touching the lower layers.
//
// The Spec's zero-valued tuning fields (injection offset, measurement
// margin, section count) are filled from the package defaults, keeping
// the common case to dims, frequency, device map, PML depth and modes.
package sim
