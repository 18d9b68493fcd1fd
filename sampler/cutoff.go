// SPDX-License-Identifier: MIT

package sampler

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/thermo/bqm"
)

// Comparison decides which couplings a CutoffComposite drops.
type Comparison int

const (
	// CompareLess drops couplings with |J| < cutoff.
	CompareLess Comparison = iota
	// CompareLessEqual drops couplings with |J| <= cutoff.
	CompareLessEqual
)

func (c Comparison) drops(abs, cutoff float64) bool {
	if c == CompareLessEqual {
		return abs <= cutoff
	}
	return abs < cutoff
}

// CutoffComposite removes weak interactions before delegating to Child.
//
// Couplings are compared in CutoffVartype (the same model has different
// coefficients as Ising and as QUBO). Variables left without couplings are
// not sent to Child; each is set afterwards to the value minimising its
// energy against the kept variables of every sample. When every variable
// would be isolated, the last one is kept so Child still has a problem.
// Energies are those of the original model.
type CutoffComposite struct {
	Child         Sampler
	Cutoff        float64
	CutoffVartype bqm.Vartype
	Comparison    Comparison
}

// Properties forwards the child's properties.
func (c *CutoffComposite) Properties() Properties {
	if c.Child == nil {
		return Properties{}
	}
	return c.Child.Properties()
}

// Sample cuts m, samples the reduced model with Child and restores the
// isolated variables. p is forwarded unchanged.
func (c *CutoffComposite) Sample(ctx context.Context, m *bqm.Model, p Params) (*bqm.SampleSet, error) {
	if c.Child == nil {
		return nil, fmt.Errorf("CutoffComposite: %w", ErrNilChild)
	}
	if m.NumVariables() == 0 {
		return nil, fmt.Errorf("CutoffComposite: %w", bqm.ErrEmptyModel)
	}

	cut, isolated := c.reduce(m)
	child, err := c.Child.Sample(ctx, cut, p)
	if err != nil {
		return nil, fmt.Errorf("CutoffComposite: %w", err)
	}
	child = child.As(m.Vartype())

	out := child
	if len(isolated) > 0 {
		cols := restoreIsolated(child, m, isolated)
		if out, err = child.Append(isolated, cols); err != nil {
			return nil, fmt.Errorf("CutoffComposite: %w", err)
		}
	}
	e, err := m.Energies(out)
	if err != nil {
		return nil, fmt.Errorf("CutoffComposite: %w", err)
	}
	if err := out.SetEnergies(e); err != nil {
		return nil, fmt.Errorf("CutoffComposite: %w", err)
	}
	return out, nil
}

// reduce returns the cut model (in CutoffVartype) and the removed isolated
// variables in declaration order.
func (c *CutoffComposite) reduce(m *bqm.Model) (*bqm.Model, []string) {
	cut := m.As(c.CutoffVartype)
	for _, it := range cut.Interactions() {
		if c.Comparison.drops(math.Abs(it.Bias), c.Cutoff) {
			cut.RemoveInteraction(it.U, it.V)
		}
	}
	var isolated []string
	for _, v := range cut.Variables() {
		if cut.Degree(v) == 0 {
			isolated = append(isolated, v)
		}
	}
	if len(isolated) == cut.NumVariables() {
		isolated = isolated[:len(isolated)-1]
	}
	for _, v := range isolated {
		cut.RemoveVariable(v)
	}
	return cut, isolated
}

// restoreIsolated picks, per sample, the value of each isolated variable v
// minimising v·(h_v + Σ J_uv·u) over its neighbours u present in s.
// Isolated variables do not see each other.
func restoreIsolated(s *bqm.SampleSet, m *bqm.Model, isolated []string) [][]float64 {
	vt := m.Vartype()
	low := vt.Values()[0]
	present := make(map[string]bool, s.NumVariables())
	for _, v := range s.Variables() {
		present[v] = true
	}
	cols := make([][]float64, len(isolated))
	for k, v := range isolated {
		var nbs []bqm.Neighbor
		for _, nb := range m.Neighbors(v) {
			if present[nb.Label] {
				nbs = append(nbs, nb)
			}
		}
		hv := m.Linear(v)
		col := make([]float64, s.Len())
		for i := range col {
			field := hv
			for _, nb := range nbs {
				u, _ := s.Value(i, nb.Label)
				field += nb.Bias * u
			}
			if field <= 0 {
				col[i] = 1
			} else {
				col[i] = low
			}
		}
		cols[k] = col
	}
	return cols
}
