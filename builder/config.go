// SPDX-License-Identifier: MIT
// Package: thermo/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn       = DefaultIDFn            ("0","1","2",...)
//   • rng        = nil                    (no randomness unless seeded)
//   • linearFn   = ConstantBiasFn(0)
//   • couplingFn = ConstantBiasFn(DefaultCoupling)

package builder

import "math/rand"

// DefaultCoupling is the coupling used when no coupling option is given:
// a ferromagnetic Ising bond.
const DefaultCoupling = -1.0

// modelConfig aggregates all knobs read by constructors. It is passed by
// value so constructors cannot leak changes into each other.
type modelConfig struct {
	idFn       IDFn
	rng        *rand.Rand
	linearFn   BiasFn
	couplingFn BiasFn
	// needRand is set by options whose generators draw from rng.
	needRand bool
}

// newModelConfig applies opts in order (last wins) over the defaults.
func newModelConfig(opts ...Option) modelConfig {
	cfg := modelConfig{
		idFn:       DefaultIDFn,
		linearFn:   ConstantBiasFn(0),
		couplingFn: ConstantBiasFn(DefaultCoupling),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// requireRand reports ErrNeedRandSource when a random generator is
// configured without a source.
func (c modelConfig) requireRand(method string) error {
	if c.needRand && c.rng == nil {
		return builderErrorf(method, "random biases without WithSeed/WithRand", ErrNeedRandSource)
	}
	return nil
}
