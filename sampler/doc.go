// SPDX-License-Identifier: MIT

// Package sampler defines the sampling capability consumed by the
// temperature estimators and ships three classical implementations.
//
//   - ExactSolver enumerates every state of a small model.
//   - GibbsSampler draws Boltzmann samples at a fixed temperature with
//     single-spin heat-bath sweeps. It stands in for a hardware backend:
//     it advertises a node list and a programmable h range.
//   - CutoffComposite wraps another Sampler, drops weak couplings and
//     isolated variables before sampling, and restores the isolated
//     variables to their energy-minimising values afterwards.
//
// Parameters travel as a Params map (num_reads, seed, sweeps, auto_scale)
// so that composites can forward them untouched.
package sampler
