// SPDX-License-Identifier: MIT
// Package: thermo/builder
//
// impl_uncoupled.go - Uncoupled(n) and FromLabels(labels): variables with
// linear biases only.
//
// Determinism: linear biases are drawn in declaration order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/thermo/bqm"
)

// Uncoupled declares n variables labelled by cfg.idFn with no couplings.
// Complexity: O(n).
func Uncoupled(n int) Constructor {
	return func(m *bqm.Model, cfg modelConfig) error {
		if err := validateMin(MethodUncoupled, n, MinUncoupledVars); err != nil {
			return err
		}
		if err := cfg.requireRand(MethodUncoupled); err != nil {
			return err
		}
		if _, err := declareRange(m, cfg, n); err != nil {
			return fmt.Errorf("%s: %w", MethodUncoupled, err)
		}
		return nil
	}
}

// FromLabels declares the given labels, in order, with no couplings. It is
// how a sampler's node list becomes a model.
// Complexity: O(len(labels)).
func FromLabels(labels []string) Constructor {
	return func(m *bqm.Model, cfg modelConfig) error {
		if len(labels) == 0 {
			return builderErrorf(MethodFromLabels, "no labels", ErrTooFewVariables)
		}
		if err := cfg.requireRand(MethodFromLabels); err != nil {
			return err
		}
		for _, v := range labels {
			if err := declare(m, cfg, v); err != nil {
				return fmt.Errorf("%s: %w", MethodFromLabels, err)
			}
		}
		return nil
	}
}
