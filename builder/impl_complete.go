// SPDX-License-Identifier: MIT
// Package: thermo/builder
//
// impl_complete.go - Complete(n) and RandomSparse(n, p): dense and
// Erdős–Rényi coupling graphs.
//
// Pair order: i ascending, then j > i ascending. RandomSparse draws one
// Bernoulli trial per pair before drawing that pair's coupling.

package builder

import (
	"fmt"

	"github.com/katalvlaran/thermo/bqm"
)

// Complete couples every pair of n ≥ 1 variables (Sherrington–Kirkpatrick
// when combined with WithSpinGlassCoupling).
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(m *bqm.Model, cfg modelConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteVars); err != nil {
			return err
		}
		if err := cfg.requireRand(MethodComplete); err != nil {
			return err
		}
		ids, err := declareRange(m, cfg, n)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodComplete, err)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := couple(m, cfg, ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: %w", MethodComplete, err)
				}
			}
		}
		return nil
	}
}

// RandomSparse couples each pair of n ≥ 1 variables independently with
// probability p. An RNG is required unless p is 0 or 1.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(m *bqm.Model, cfg modelConfig) error {
		if err := validateMin(MethodRandomSparse, n, MinSparseVars); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return builderErrorf(MethodRandomSparse, "rng is required", ErrNeedRandSource)
		}
		if err := cfg.requireRand(MethodRandomSparse); err != nil {
			return err
		}
		ids, err := declareRange(m, cfg, n)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodRandomSparse, err)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == 1 || (p > 0 && cfg.rng.Float64() < p)
				if !keep {
					continue
				}
				if err := couple(m, cfg, ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: %w", MethodRandomSparse, err)
				}
			}
		}
		return nil
	}
}
