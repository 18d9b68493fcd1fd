// SPDX-License-Identifier: MIT
// Package: thermo/builder
//
// options.go - functional options for BuildModel.
//
// Contract:
//   • Options are functional (type Option func(*modelConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   • Randomness is explicit: WithSeed or WithRand.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// Option customises a modelConfig before construction.
type Option func(*modelConfig)

// WithIDScheme sets the label generator used by index-based constructors.
// Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *modelConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *modelConfig) { c.rng = r }
}

// WithSeed creates a new RNG from seed.
func WithSeed(seed int64) Option {
	return func(c *modelConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithLinearFn sets the linear-bias generator. fn receives the configured
// RNG, which may be nil. Panics on nil.
func WithLinearFn(fn BiasFn) Option {
	if fn == nil {
		panic("builder: WithLinearFn(nil)")
	}
	return func(c *modelConfig) { c.linearFn = fn }
}

// WithCouplingFn sets the coupling generator. Panics on nil.
func WithCouplingFn(fn BiasFn) Option {
	if fn == nil {
		panic("builder: WithCouplingFn(nil)")
	}
	return func(c *modelConfig) { c.couplingFn = fn }
}

// WithUniformLinear draws every linear bias uniformly from [lo, hi).
// Requires WithSeed or WithRand. Panics unless lo ≤ hi are finite.
func WithUniformLinear(lo, hi float64) Option {
	fn := UniformBiasFn(lo, hi)
	return func(c *modelConfig) {
		c.linearFn = fn
		c.needRand = true
	}
}

// WithConstCoupling sets every coupling to j. Panics on NaN or ±Inf.
func WithConstCoupling(j float64) Option {
	if math.IsNaN(j) || math.IsInf(j, 0) {
		panic(fmt.Sprintf("builder: WithConstCoupling(%g)", j))
	}
	return func(c *modelConfig) { c.couplingFn = ConstantBiasFn(j) }
}

// WithSpinGlassCoupling draws every coupling from {-1, +1} with equal
// probability. Requires WithSeed or WithRand.
func WithSpinGlassCoupling() Option {
	return func(c *modelConfig) {
		c.couplingFn = SignBiasFn(1)
		c.needRand = true
	}
}
