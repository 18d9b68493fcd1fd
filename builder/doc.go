// Package builder assembles binary quadratic models for tests, benchmarks and
// the fast temperature estimate.
//
// A model is built by BuildModel(vartype, opts, cons...): the options resolve
// into one immutable modelConfig, then every Constructor runs in order
// against the same model. Constructors describe topology (which variables
// exist and which pairs are coupled); options describe values (labels, linear
// biases, coupling strengths, randomness).
//
// Components:
//
//   - Topologies: Uncoupled, FromLabels, Chain, Cycle, Grid, Complete,
//     RandomSparse.
//   - Label schemes (IDFn): DefaultIDFn ("0","1",...), SymbolIDFn ("A".."Z"),
//     AlphanumericIDFn (base 36), ExcelColumnIDFn ("A".."Z","AA",...),
//     HexIDFn, SymbolNumberIDFn(prefix).
//   - Bias generators (BiasFn): ConstantBiasFn, UniformBiasFn, SignBiasFn.
//
// Guarantees:
//
//   - Determinism: equal options, seed and constructor order give equal
//     models. Linear biases are drawn when a variable is first declared, in
//     label order; coupling biases are drawn in emission order.
//   - Re-declaring a variable keeps its linear bias; re-coupling a pair adds
//     to its coupling.
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors and never panic.
package builder
