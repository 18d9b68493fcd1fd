// SPDX-License-Identifier: MIT

// Package thermo estimates the effective temperature of samples returned by
// annealing samplers.
//
// A sampler that draws from a Boltzmann distribution P(s) ∝ exp(-E(s)/T)
// over a binary quadratic model has a single unknown: T. thermo recovers it
// from the samples by maximising their pseudo-likelihood, which needs only
// the effective field each variable feels from its neighbours.
//
// Packages:
//
//	bqm/           binary quadratic models and sample sets (SPIN and BINARY)
//	builder/       model fixtures: chains, cycles, grids, spin glasses, random fields
//	rootfind/      bracketed bisection and Newton root search
//	temperature/   effective fields, pseudo-likelihood estimate, bootstrap, fast estimate
//	units/         bias ↔ flux-bias and freeze-out temperature conversions
//	sampler/       Sampler interface, exact solver, Gibbs sampler, cutoff composite
//	metrics/       Prometheus instrumentation of estimator runs
//	problemfile/   YAML formats for models and samples
//
// The thermo command (cmd/thermo) exposes all of the above from the shell.
//
// Quick start:
//
//	m, _ := builder.BuildModel(bqm.Spin, nil, builder.Chain(10))
//	s, _ := (&sampler.GibbsSampler{Temperature: 1}).Sample(ctx, m, nil)
//	res, _ := temperature.MaximumPseudoLikelihood(temperature.Input{Model: m, Samples: s})
//	fmt.Println(res.T)
//
// Guarantees:
//
//   - Determinism: every random draw comes from an explicit seed; parallel
//     bootstrap replicates give the same result for any worker count.
//   - Boundary outcomes (estimate clamped to the bracket, no excitations)
//     are notices on the result, never errors.
//   - Sentinel errors per package, wrapped with context, matched with errors.Is.
package thermo
