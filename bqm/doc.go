// Package bqm defines binary quadratic models and sample batches.
//
// A Model is a quadratic energy function over an ordered set of labelled
// binary variables:
//
//	E(s) = offset + Σ_i h_i s_i + Σ_{i<j} J_ij s_i s_j
//
// with s_i in {-1,+1} (Spin) or {0,1} (Binary). Every unordered pair {i,j}
// carries exactly one coupling coefficient; AddQuadratic(u,v) and
// AddQuadratic(v,u) accumulate into the same value.
//
// A SampleSet is a batch of assignments stored as a gonum *mat.Dense
// (rows = samples, columns = variables) together with the ordered column
// labels. Sample sets are read-only to consumers: every transform (Reorder,
// Spin, Rows, Append) returns a new set.
//
// Determinism:
//   - Variables keep insertion order; Neighbors and Interactions iterate in
//     that order, never in map order.
//   - Conversions between vartypes are exact affine maps (s = 2x - 1).
//
// Concurrency:
//   - Model and SampleSet are not safe for concurrent mutation. Estimators
//     only read them, so concurrent reads are fine.
package bqm
