// SPDX-License-Identifier: MIT
// Package: thermo/builder
//
// impl_chain.go - Chain(n) and Cycle(n): one-dimensional spin chains.
//
// Emission order: all variables 0..n-1 first, then couplings (i, i+1) for
// ascending i; Cycle closes with (n-1, 0).

package builder

import (
	"fmt"

	"github.com/katalvlaran/thermo/bqm"
)

// Chain builds an open chain of n ≥ 2 variables.
// Complexity: O(n).
func Chain(n int) Constructor {
	return func(m *bqm.Model, cfg modelConfig) error {
		return ring(m, cfg, MethodChain, n, MinChainVars, false)
	}
}

// Cycle builds a closed ring of n ≥ 3 variables.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(m *bqm.Model, cfg modelConfig) error {
		return ring(m, cfg, MethodCycle, n, MinCycleVars, true)
	}
}

func ring(m *bqm.Model, cfg modelConfig, method string, n, min int, closed bool) error {
	if err := validateMin(method, n, min); err != nil {
		return err
	}
	if err := cfg.requireRand(method); err != nil {
		return err
	}
	ids, err := declareRange(m, cfg, n)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	for i := 0; i+1 < n; i++ {
		if err := couple(m, cfg, ids[i], ids[i+1]); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}
	if closed {
		if err := couple(m, cfg, ids[n-1], ids[0]); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}
	return nil
}
