// SPDX-License-Identifier: MIT
// Package: thermo/builder
//
// api.go - the BuildModel orchestrator and the Constructor type.
//
// Contract:
//   - One orchestrator: BuildModel(vt, opts, cons...). Creates the model,
//     resolves the config, runs cons in order.
//   - Constructors are implemented in impl_*.go.
//   - Same inputs, options, seed and constructor order ⇒ identical models.

package builder

import (
	"fmt"

	"github.com/katalvlaran/thermo/bqm"
)

// Constructor adds variables and couplings to m using the resolved config.
// Constructors validate their parameters first and return sentinel errors.
type Constructor func(m *bqm.Model, cfg modelConfig) error

// BuildModel creates an empty model of vartype vt, resolves opts and applies
// every constructor in order. The first constructor error is returned
// wrapped as "BuildModel: %w"; no partial model is returned.
//
// Complexity: O(len(opts)) plus the cost of each constructor.
func BuildModel(vt bqm.Vartype, opts []Option, cons ...Constructor) (*bqm.Model, error) {
	if vt != bqm.Spin && vt != bqm.Binary {
		return nil, fmt.Errorf("BuildModel: vartype %s: %w", vt, ErrOptionViolation)
	}
	m := bqm.NewModel(vt)
	cfg := newModelConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildModel: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildModel: %w", err)
		}
	}
	return m, nil
}

// declare adds v with a freshly drawn linear bias unless it already exists.
func declare(m *bqm.Model, cfg modelConfig, v string) error {
	if m.Has(v) {
		return nil
	}
	if err := m.AddLinear(v, cfg.linearFn(cfg.rng)); err != nil {
		return fmt.Errorf("declare(%q): %v: %w", v, err, ErrConstructFailed)
	}
	return nil
}

// couple adds a freshly drawn coupling between u and v.
func couple(m *bqm.Model, cfg modelConfig, u, v string) error {
	if err := m.AddQuadratic(u, v, cfg.couplingFn(cfg.rng)); err != nil {
		return fmt.Errorf("couple(%q,%q): %v: %w", u, v, err, ErrConstructFailed)
	}
	return nil
}

// declareRange declares n variables labelled cfg.idFn(0..n-1) and returns
// their labels.
func declareRange(m *bqm.Model, cfg modelConfig, n int) ([]string, error) {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
		if err := declare(m, cfg, ids[i]); err != nil {
			return nil, err
		}
	}
	return ids, nil
}
