// SPDX-License-Identifier: MIT

// Package units converts between the unitless Ising biases seen by a
// sampler and the physical quantities of a flux-qubit annealer: persistent
// current, flux bias and device temperature.
//
// The annealer Hamiltonian is taken as H(s) = B(s)/2·H_P − A(s)/2·H_D with
// an extra flux term −Ip(s)·Φ0·Σ Φ_i σ^z_i. Equating B/2·h_i with Ip·Φ_i
// gives the bias/flux-bias relations; B = 2·M_AFM·Ip² relates the schedule
// to the persistent current.
//
// Every function takes explicit unit tags. Zero-valued tags select the
// customary annealer units (GHz, pH, µA, mK), so the zero Params already
// describe a schedule in GHz. Unknown tags return ErrUnknownUnit.
//
// Defaults describe single-qubit freeze-out (s ≈ 0.612) on a current
// generation annealer: B = 1.391 GHz, M_AFM = 1.647 pH.
package units
