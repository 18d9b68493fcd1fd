// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BiasFn produces one coefficient from an optional RNG. It must consume the
// RNG deterministically.
type BiasFn func(rng *rand.Rand) float64

// ConstantBiasFn always returns value. Panics on NaN or ±Inf.
func ConstantBiasFn(value float64) BiasFn {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantBiasFn: value must be finite, got %g", value))
	}
	return func(_ *rand.Rand) float64 { return value }
}

// UniformBiasFn samples uniformly from [lo, hi). With lo == hi it is constant.
// A nil RNG yields the midpoint. Panics unless lo ≤ hi are finite.
func UniformBiasFn(lo, hi float64) BiasFn {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || hi < lo {
		panic(fmt.Sprintf("UniformBiasFn: require finite lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil || lo == hi {
			return lo + (hi-lo)/2
		}
		return lo + rng.Float64()*(hi-lo)
	}
}

// SignBiasFn returns ±magnitude with equal probability, +magnitude when the
// RNG is nil. Panics unless magnitude is finite and positive.
func SignBiasFn(magnitude float64) BiasFn {
	if !(magnitude > 0) || math.IsInf(magnitude, 0) {
		panic(fmt.Sprintf("SignBiasFn: magnitude must be > 0, got %g", magnitude))
	}
	return func(rng *rand.Rand) float64 {
		if rng != nil && rng.Intn(2) == 0 {
			return -magnitude
		}
		return magnitude
	}
}
