// SPDX-License-Identifier: MIT

// Package temperature estimates the effective temperature of a batch of
// samples drawn from a binary quadratic model.
//
// The pipeline has three stages:
//
//  1. EffectiveField turns a model and a sample batch into a matrix of
//     per-sample, per-variable effective fields f_i(s) = h_i + Σ_j J_ij s_j,
//     or excitation energies 2·s_i·f_i(s).
//
//  2. MaximumPseudoLikelihood finds x = -1/T zeroing
//
//     D(x) = Σ_{s,i} f_i(s) / (1 + exp(f_i(s)·x)),
//
//     the derivative of the mean log pseudo-likelihood. The default search is
//     a bracketed bisection over the temperature bracket (1e-3, 1000); Newton
//     iteration is available through WithMethod(MethodNewton).
//
//  3. Bootstrap resamples rows of the excitation matrix and re-runs the point
//     estimate, giving a spread of estimates for a standard error.
//
// Boundary outcomes are not errors. When the root lies outside the bracket
// the estimate is clamped to the nearer bound; when no sample has a positive
// excitation the estimate is exactly 0. Both produce a Notice, returned in
// Result.Notices, logged at WARN through the configured *slog.Logger and sent
// to the Observer if one is set. Overflow in exp saturates silently.
//
// FastEffectiveTemperature wires a sampler.Sampler into the pipeline: it
// programs random linear biases on every node of an uncoupled model, samples
// it with auto_scale disabled and estimates the temperature of the result.
//
// Determinism: with a fixed seed every result is reproducible. Bootstrap
// indices are drawn sequentially from one seeded source before replicates run
// in parallel, so the worker count never changes the output.
package temperature
