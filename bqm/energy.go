// SPDX-License-Identifier: MIT

package bqm

import "fmt"

// Energy returns E(sample) where sample[c] is the value of order[c].
// A nil order means the declared variable order.
func (m *Model) Energy(sample []float64, order []string) (float64, error) {
	if order == nil {
		order = m.order
	}
	if len(sample) != len(order) {
		return 0, fmt.Errorf("Energy: %d values for %d labels: %w", len(sample), len(order), ErrVariableMismatch)
	}
	pos, err := m.positions(order)
	if err != nil {
		return 0, fmt.Errorf("Energy: %w", err)
	}
	return m.energyAt(sample, pos), nil
}

// Energies returns the energy of every sample in s. The sample labels must
// equal the model's variables; the sample vartype must match the model's.
func (m *Model) Energies(s *SampleSet) ([]float64, error) {
	if s == nil {
		return nil, fmt.Errorf("Energies: %w", ErrEmptySamples)
	}
	pos, err := m.positions(s.labels)
	if err != nil {
		return nil, fmt.Errorf("Energies: %w", err)
	}
	if s.vartype != m.vartype {
		s = s.As(m.vartype)
	}
	out := make([]float64, s.Len())
	for i := range out {
		out[i] = m.energyAt(s.data.RawRowView(i), pos)
	}
	return out, nil
}

func (m *Model) energyAt(sample []float64, pos map[string]int) float64 {
	e := m.offset
	for i, v := range m.order {
		e += m.linear[i] * sample[pos[v]]
	}
	for i, nb := range m.adj {
		xi := sample[pos[m.order[i]]]
		for _, j := range sortedInts(nb) {
			if j > i {
				e += nb[j] * xi * sample[pos[m.order[j]]]
			}
		}
	}
	return e
}
