// SPDX-License-Identifier: MIT

package temperature

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/thermo/bqm"
)

// FieldForm selects what EffectiveField reports per entry.
type FieldForm int

const (
	// FieldOnly reports f_i(s) = h_i + Σ_j J_ij s_j.
	FieldOnly FieldForm = iota

	// Excitation reports 2·s_i·f_i(s): the energy released by flipping s_i.
	// Positive entries mean the sample is not a local minimum along i.
	Excitation
)

// String returns "field" or "excitation".
func (f FieldForm) String() string {
	switch f {
	case FieldOnly:
		return "field"
	case Excitation:
		return "excitation"
	default:
		return fmt.Sprintf("FieldForm(%d)", int(f))
	}
}

// Field is an effective-field matrix: Values has one row per sample and one
// column per entry of Variables.
type Field struct {
	Values    *mat.Dense
	Variables []string
	Form      FieldForm
}

// NewField validates and wraps a field matrix. values is not copied.
func NewField(values *mat.Dense, variables []string, form FieldForm) (*Field, error) {
	if values == nil || values.IsEmpty() {
		return nil, fmt.Errorf("NewField: no values: %w", ErrFieldShape)
	}
	r, c := values.Dims()
	if c != len(variables) {
		return nil, fmt.Errorf("NewField: %d columns for %d variables: %w", c, len(variables), ErrFieldShape)
	}
	for i := 0; i < r; i++ {
		for j, x := range values.RawRowView(i) {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, fmt.Errorf("NewField: (%d,%s)=%g: %w", i, variables[j], x, ErrFieldShape)
			}
		}
	}
	return &Field{Values: values, Variables: append([]string(nil), variables...), Form: form}, nil
}

// Len returns the number of samples (rows).
func (f *Field) Len() int {
	r, _ := f.Values.Dims()
	return r
}

// MaxExcitation returns the largest entry of the matrix.
func (f *Field) MaxExcitation() float64 {
	return mat.Max(f.Values)
}

// Rows returns a new field made of the given rows; indices may repeat.
func (f *Field) Rows(indices []int) (*Field, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("Rows: no indices: %w", ErrFieldShape)
	}
	r, c := f.Values.Dims()
	out := mat.NewDense(len(indices), c, nil)
	for k, i := range indices {
		if i < 0 || i >= r {
			return nil, fmt.Errorf("Rows: index %d of %d: %w", i, r, bqm.ErrOutOfRange)
		}
		out.SetRow(k, f.Values.RawRowView(i))
	}
	return &Field{Values: out, Variables: f.Variables, Form: f.Form}, nil
}

// flat returns every entry in row-major order.
func (f *Field) flat() []float64 {
	r, c := f.Values.Dims()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		out = append(out, f.Values.RawRowView(i)...)
	}
	return out
}

// EffectiveField computes the effective field of every variable of m under
// every sample of s.
//
// A nil s means a single all-ones sample. Binary models and samples are
// mapped to spins (2x-1) first, so values are in spin units. Sample columns
// are matched to model variables by label; the result follows the model's
// declared variable order.
//
// Complexity: O(S·(N+E)) for S samples, N variables and E couplings.
func EffectiveField(m *bqm.Model, s *bqm.SampleSet, form FieldForm) (*Field, error) {
	if m == nil {
		return nil, fmt.Errorf("EffectiveField: nil model: %w", ErrMissingInput)
	}
	if m.NumVariables() == 0 {
		return nil, fmt.Errorf("EffectiveField: %w", bqm.ErrEmptyModel)
	}
	order := m.Variables()
	if s == nil {
		var err error
		if s, err = bqm.Ones(order, m.Vartype()); err != nil {
			return nil, fmt.Errorf("EffectiveField: %w", err)
		}
	}
	spin := m.Spin()
	samples, err := s.Spin().Reorder(order)
	if err != nil {
		return nil, fmt.Errorf("EffectiveField: %w", err)
	}
	h, rows, cols, data, err := spin.Vectors(order)
	if err != nil {
		return nil, fmt.Errorf("EffectiveField: %w", err)
	}

	n := len(order)
	out := mat.NewDense(samples.Len(), n, nil)
	for k := 0; k < samples.Len(); k++ {
		sv, _ := samples.Row(k)
		fv := out.RawRowView(k)
		copy(fv, h)
		for e, b := range data {
			u, v := rows[e], cols[e]
			fv[u] += b * sv[v]
			fv[v] += b * sv[u]
		}
		if form == Excitation {
			for i := range fv {
				fv[i] *= 2 * sv[i]
			}
		}
	}
	return &Field{Values: out, Variables: order, Form: form}, nil
}
