// Package power computes transmitted power from a solved field by two
// independent methods that must agree for a lossless structure:
//
//   - Mode overlap: least-squares projection of the simulated Ey and Hz
//     along a cross-section onto known output-mode profiles, evaluated
//     over a range of cross-sections inboard of the output PML and
//     averaged. A single line is noisy from evanescent near-field
//     content; the propagating-mode power is constant along the guide,
//     so averaging rejects the noise.
//   - Box flux: the Poynting-like quantity integrated around a closed
//     rectangular contour inset from the PML, with outward-normal sign
//     convention. It equals the total power leaving the interior and
//     serves as an energy-conservation cross-check.
//
// Both are pure post-processing over reconstructed fields. Small
// negative values are a known discretization/PML artifact and are
// reported as-is, never clamped.
package power
