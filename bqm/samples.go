// SPDX-License-Identifier: MIT

package bqm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// SampleSet is a batch of assignments: rows are samples, columns are
// variables in the order given by Variables().
type SampleSet struct {
	labels   []string
	index    map[string]int
	data     *mat.Dense
	vartype  Vartype
	energies []float64 // optional, len == Len() when set
}

// NewSampleSet builds a sample set from row slices. Every value must belong
// to the vartype domain.
func NewSampleSet(labels []string, rows [][]float64, vt Vartype) (*SampleSet, error) {
	if len(rows) == 0 || len(labels) == 0 {
		return nil, fmt.Errorf("NewSampleSet: %w", ErrEmptySamples)
	}
	c := len(labels)
	buf := make([]float64, 0, len(rows)*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewSampleSet: row %d has %d values for %d labels: %w", i, len(row), c, ErrRaggedSamples)
		}
		buf = append(buf, row...)
	}
	return fromBuffer(labels, len(rows), buf, vt)
}

// NewSampleSetFromDense wraps an existing matrix (not copied).
func NewSampleSetFromDense(labels []string, d *mat.Dense, vt Vartype) (*SampleSet, error) {
	if d == nil {
		return nil, fmt.Errorf("NewSampleSetFromDense: %w", ErrEmptySamples)
	}
	r, c := d.Dims()
	if c != len(labels) {
		return nil, fmt.Errorf("NewSampleSetFromDense: %d columns for %d labels: %w", c, len(labels), ErrVariableMismatch)
	}
	idx, err := labelIndex(labels)
	if err != nil {
		return nil, fmt.Errorf("NewSampleSetFromDense: %w", err)
	}
	for i := 0; i < r; i++ {
		for j, x := range d.RawRowView(i) {
			if !vt.Valid(x) {
				return nil, fmt.Errorf("NewSampleSetFromDense: (%d,%s)=%g for %s: %w", i, labels[j], x, vt, ErrBadValue)
			}
		}
	}
	return &SampleSet{labels: append([]string(nil), labels...), index: idx, data: d, vartype: vt}, nil
}

// FromMaps builds a sample set from label→value maps. Column order is the
// label order of the first map, sorted; every map must carry the same labels.
func FromMaps(samples []map[string]float64, vt Vartype) (*SampleSet, error) {
	if len(samples) == 0 || len(samples[0]) == 0 {
		return nil, fmt.Errorf("FromMaps: %w", ErrEmptySamples)
	}
	labels := sortedKeys(samples[0])
	rows := make([][]float64, len(samples))
	for i, s := range samples {
		if len(s) != len(labels) {
			return nil, fmt.Errorf("FromMaps: sample %d: %w", i, ErrVariableMismatch)
		}
		row := make([]float64, len(labels))
		for j, v := range labels {
			x, ok := s[v]
			if !ok {
				return nil, fmt.Errorf("FromMaps: sample %d lacks %q: %w", i, v, ErrVariableMismatch)
			}
			row[j] = x
		}
		rows[i] = row
	}
	return NewSampleSet(labels, rows, vt)
}

// Ones returns a single sample assigning 1 to every label.
func Ones(labels []string, vt Vartype) (*SampleSet, error) {
	row := make([]float64, len(labels))
	for j := range row {
		row[j] = 1
	}
	return NewSampleSet(labels, [][]float64{row}, vt)
}

func fromBuffer(labels []string, r int, buf []float64, vt Vartype) (*SampleSet, error) {
	idx, err := labelIndex(labels)
	if err != nil {
		return nil, err
	}
	c := len(labels)
	for k, x := range buf {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("(%d,%s): %w", k/c, labels[k%c], ErrNaNInf)
		}
		if !vt.Valid(x) {
			return nil, fmt.Errorf("(%d,%s)=%g for %s: %w", k/c, labels[k%c], x, vt, ErrBadValue)
		}
	}
	return &SampleSet{
		labels:  append([]string(nil), labels...),
		index:   idx,
		data:    mat.NewDense(r, c, buf),
		vartype: vt,
	}, nil
}

func labelIndex(labels []string) (map[string]int, error) {
	idx := make(map[string]int, len(labels))
	for j, v := range labels {
		if v == "" {
			return nil, ErrEmptyLabel
		}
		if _, dup := idx[v]; dup {
			return nil, fmt.Errorf("label %q: %w", v, ErrDuplicateLabel)
		}
		idx[v] = j
	}
	return idx, nil
}

// Len returns the number of samples.
func (s *SampleSet) Len() int {
	r, _ := s.data.Dims()
	return r
}

// NumVariables returns the number of columns.
func (s *SampleSet) NumVariables() int { return len(s.labels) }

// Vartype returns the value domain of the samples.
func (s *SampleSet) Vartype() Vartype { return s.vartype }

// Variables returns a copy of the column labels.
func (s *SampleSet) Variables() []string { return append([]string(nil), s.labels...) }

// Matrix returns the underlying matrix. Callers must not modify it.
func (s *SampleSet) Matrix() *mat.Dense { return s.data }

// Row returns sample i as a slice sharing storage with the set.
func (s *SampleSet) Row(i int) ([]float64, error) {
	if i < 0 || i >= s.Len() {
		return nil, fmt.Errorf("Row(%d): %w", i, ErrOutOfRange)
	}
	return s.data.RawRowView(i), nil
}

// Sample returns sample i as a label→value map.
func (s *SampleSet) Sample(i int) (map[string]float64, error) {
	row, err := s.Row(i)
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(row))
	for j, v := range s.labels {
		out[v] = row[j]
	}
	return out, nil
}

// Value returns the value of variable v in sample i.
func (s *SampleSet) Value(i int, v string) (float64, error) {
	j, ok := s.index[v]
	if !ok {
		return 0, fmt.Errorf("Value(%d,%s): %w", i, v, ErrUnknownVariable)
	}
	if i < 0 || i >= s.Len() {
		return 0, fmt.Errorf("Value(%d,%s): %w", i, v, ErrOutOfRange)
	}
	return s.data.At(i, j), nil
}

// Energies returns a copy of the recorded energies, or nil if none were set.
func (s *SampleSet) Energies() []float64 {
	if s.energies == nil {
		return nil
	}
	return append([]float64(nil), s.energies...)
}

// SetEnergies records per-sample energies.
func (s *SampleSet) SetEnergies(e []float64) error {
	if len(e) != s.Len() {
		return fmt.Errorf("SetEnergies: %d energies for %d samples: %w", len(e), s.Len(), ErrRaggedSamples)
	}
	s.energies = append([]float64(nil), e...)
	return nil
}

// First returns the index of the lowest-energy sample (first wins ties).
// Without recorded energies it returns 0.
func (s *SampleSet) First() int {
	best := 0
	for i, e := range s.energies {
		if e < s.energies[best] {
			best = i
		}
	}
	return best
}

// Reorder returns a copy whose columns follow order. order must be a
// permutation of Variables().
func (s *SampleSet) Reorder(order []string) (*SampleSet, error) {
	if len(order) != len(s.labels) {
		return nil, fmt.Errorf("Reorder: %d labels for %d columns: %w", len(order), len(s.labels), ErrVariableMismatch)
	}
	perm := make([]int, len(order))
	seen := make(map[string]bool, len(order))
	for c, v := range order {
		j, ok := s.index[v]
		if !ok {
			return nil, fmt.Errorf("Reorder: label %q: %w", v, ErrVariableMismatch)
		}
		if seen[v] {
			return nil, fmt.Errorf("Reorder: label %q: %w", v, ErrDuplicateLabel)
		}
		seen[v] = true
		perm[c] = j
	}
	r, c := s.Len(), len(order)
	buf := make([]float64, r*c)
	for i := 0; i < r; i++ {
		src := s.data.RawRowView(i)
		dst := buf[i*c : (i+1)*c]
		for k, j := range perm {
			dst[k] = src[j]
		}
	}
	out, err := fromBuffer(order, r, buf, s.vartype)
	if err != nil {
		return nil, fmt.Errorf("Reorder: %w", err)
	}
	out.energies = s.Energies()
	return out, nil
}

// Spin returns the samples mapped to {-1,+1}: binary values become 2x - 1.
// A Spin set is returned as a copy.
func (s *SampleSet) Spin() *SampleSet {
	out := s.clone()
	if s.vartype == Binary {
		out.data.Apply(func(_, _ int, x float64) float64 { return 2*x - 1 }, out.data)
		out.vartype = Spin
	}
	return out
}

// Binary returns the samples mapped to {0,1}: spin values become (s+1)/2.
func (s *SampleSet) Binary() *SampleSet {
	out := s.clone()
	if s.vartype == Spin {
		out.data.Apply(func(_, _ int, x float64) float64 { return (x + 1) / 2 }, out.data)
		out.vartype = Binary
	}
	return out
}

// As returns the samples converted to vt.
func (s *SampleSet) As(vt Vartype) *SampleSet {
	if vt == Binary {
		return s.Binary()
	}
	return s.Spin()
}

// Rows returns a new set made of the given rows, in the given order.
// Indices may repeat.
func (s *SampleSet) Rows(indices []int) (*SampleSet, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("Rows: %w", ErrEmptySamples)
	}
	c := len(s.labels)
	buf := make([]float64, len(indices)*c)
	var e []float64
	if s.energies != nil {
		e = make([]float64, len(indices))
	}
	for k, i := range indices {
		if i < 0 || i >= s.Len() {
			return nil, fmt.Errorf("Rows: index %d: %w", i, ErrOutOfRange)
		}
		copy(buf[k*c:(k+1)*c], s.data.RawRowView(i))
		if e != nil {
			e[k] = s.energies[i]
		}
	}
	out := &SampleSet{
		labels:   append([]string(nil), s.labels...),
		index:    s.index,
		data:     mat.NewDense(len(indices), c, buf),
		vartype:  s.vartype,
		energies: e,
	}
	return out, nil
}

// Append returns a new set with extra columns appended on the right.
// cols[k] holds the values of labels[k] for every sample. Energies are
// dropped because the assignment changed.
func (s *SampleSet) Append(labels []string, cols [][]float64) (*SampleSet, error) {
	if len(labels) != len(cols) {
		return nil, fmt.Errorf("Append: %d labels for %d columns: %w", len(labels), len(cols), ErrRaggedSamples)
	}
	r := s.Len()
	for k, col := range cols {
		if len(col) != r {
			return nil, fmt.Errorf("Append: column %q has %d values for %d samples: %w", labels[k], len(col), r, ErrRaggedSamples)
		}
	}
	all := append(s.Variables(), labels...)
	c := len(all)
	buf := make([]float64, r*c)
	for i := 0; i < r; i++ {
		row := buf[i*c : (i+1)*c]
		copy(row, s.data.RawRowView(i))
		for k, col := range cols {
			row[len(s.labels)+k] = col[i]
		}
	}
	out, err := fromBuffer(all, r, buf, s.vartype)
	if err != nil {
		return nil, fmt.Errorf("Append: %w", err)
	}
	return out, nil
}

func (s *SampleSet) clone() *SampleSet {
	return &SampleSet{
		labels:   append([]string(nil), s.labels...),
		index:    s.index,
		data:     mat.DenseCopyOf(s.data),
		vartype:  s.vartype,
		energies: s.Energies(),
	}
}
