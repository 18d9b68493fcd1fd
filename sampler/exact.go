// SPDX-License-Identifier: MIT

package sampler

import (
	"context"
	"fmt"

	"github.com/katalvlaran/thermo/bqm"
)

// MaxExactVariables bounds ExactSolver enumeration (2^24 states).
const MaxExactVariables = 24

// ExactSolver returns every state of the model with its energy.
// Rows enumerate states in binary counting order, the last variable
// changing fastest. Params are ignored.
type ExactSolver struct{}

// Properties reports no node or range restriction.
func (ExactSolver) Properties() Properties { return Properties{} }

// Sample enumerates all 2^n states.
//
// Complexity: O(2^n · (n + E)).
func (ExactSolver) Sample(ctx context.Context, m *bqm.Model, _ Params) (*bqm.SampleSet, error) {
	n := m.NumVariables()
	if n == 0 {
		return nil, fmt.Errorf("ExactSolver: %w", bqm.ErrEmptyModel)
	}
	if n > MaxExactVariables {
		return nil, fmt.Errorf("ExactSolver: %d variables: %w", n, ErrTooLarge)
	}
	vals := m.Vartype().Values()
	total := 1 << n
	rows := make([][]float64, total)
	for k := 0; k < total; k++ {
		if k%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		row := make([]float64, n)
		for i := 0; i < n; i++ {
			row[i] = vals[(k>>(n-1-i))&1]
		}
		rows[k] = row
	}
	s, err := bqm.NewSampleSet(m.Variables(), rows, m.Vartype())
	if err != nil {
		return nil, fmt.Errorf("ExactSolver: %w", err)
	}
	e, err := m.Energies(s)
	if err != nil {
		return nil, fmt.Errorf("ExactSolver: %w", err)
	}
	if err := s.SetEnergies(e); err != nil {
		return nil, fmt.Errorf("ExactSolver: %w", err)
	}
	return s, nil
}
