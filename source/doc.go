// Package source builds the excitation vector that launches a
// waveguide mode in exactly one direction.
//
// The magnetic-current source occupies two adjacent grid columns
// straddling the injection plane: column c carries the mode profile φ
// directly, column c−1 carries −φ·e^{iβ}. A wave radiated leftward from
// column c arrives at column c−1 with phase e^{iβ} and is cancelled
// analytically by the second sheet, so only the forward-travelling
// mode survives. The raw field difference is converted to an
// equivalent current by dividing by the local permittivity component,
// then scaled by
//
//	−i·2·sinβ / (1 − e^{i2β})
//
// which has unit magnitude, so a power-normalized mode launches unit
// power independent of β. The numerator carries sinβ rather than β:
// on the grid a travelling wave advances by e^{iβ} per cell, and the
// continuous-β factor would overdrive the launch by β/sinβ. At cutoff
// (β→0 or β→π) the two columns stop discriminating direction and the
// builder fails with ErrDegenerateMode.
package source
