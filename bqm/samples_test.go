// SPDX-License-Identifier: MIT

package bqm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thermo/bqm"
)

func TestNewSampleSet_Validation(t *testing.T) {
	_, err := bqm.NewSampleSet(nil, nil, bqm.Spin)
	assert.ErrorIs(t, err, bqm.ErrEmptySamples)

	_, err = bqm.NewSampleSet([]string{"a", "b"}, [][]float64{{1, 1}, {1}}, bqm.Spin)
	assert.ErrorIs(t, err, bqm.ErrRaggedSamples)

	_, err = bqm.NewSampleSet([]string{"a"}, [][]float64{{0}}, bqm.Spin)
	assert.ErrorIs(t, err, bqm.ErrBadValue)

	_, err = bqm.NewSampleSet([]string{"a"}, [][]float64{{-1}}, bqm.Binary)
	assert.ErrorIs(t, err, bqm.ErrBadValue)

	_, err = bqm.NewSampleSet([]string{"a", "a"}, [][]float64{{1, 1}}, bqm.Spin)
	assert.ErrorIs(t, err, bqm.ErrDuplicateLabel)
}

func TestFromMaps(t *testing.T) {
	s, err := bqm.FromMaps([]map[string]float64{
		{"b": 1, "a": -1},
		{"a": 1, "b": 1},
	}, bqm.Spin)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, s.Variables())
	assert.Equal(t, 2, s.Len())
	v, err := s.Value(0, "a")
	require.NoError(t, err)
	assert.Equal(t, -1.0, v)

	_, err = bqm.FromMaps([]map[string]float64{{"a": 1}, {"b": 1}}, bqm.Spin)
	assert.ErrorIs(t, err, bqm.ErrVariableMismatch)
}

func TestSampleSet_Reorder(t *testing.T) {
	s, err := bqm.NewSampleSet([]string{"a", "b", "c"}, [][]float64{{1, -1, 1}, {-1, -1, 1}}, bqm.Spin)
	require.NoError(t, err)
	require.NoError(t, s.SetEnergies([]float64{3, 4}))

	r, err := s.Reorder([]string{"c", "a", "b"})
	require.NoError(t, err)
	row, err := r.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, -1}, row)
	assert.Equal(t, []float64{3, 4}, r.Energies())

	_, err = s.Reorder([]string{"a", "b"})
	assert.ErrorIs(t, err, bqm.ErrVariableMismatch)
	_, err = s.Reorder([]string{"a", "b", "z"})
	assert.ErrorIs(t, err, bqm.ErrVariableMismatch)
}

func TestSampleSet_SpinBinary(t *testing.T) {
	s, err := bqm.NewSampleSet([]string{"a", "b"}, [][]float64{{0, 1}}, bqm.Binary)
	require.NoError(t, err)

	sp := s.Spin()
	assert.Equal(t, bqm.Spin, sp.Vartype())
	row, _ := sp.Row(0)
	assert.Equal(t, []float64{-1, 1}, row)

	// the source is untouched
	row, _ = s.Row(0)
	assert.Equal(t, []float64{0, 1}, row)

	back := sp.Binary()
	row, _ = back.Row(0)
	assert.Equal(t, []float64{0, 1}, row)
}

func TestSampleSet_Rows(t *testing.T) {
	s, err := bqm.NewSampleSet([]string{"a"}, [][]float64{{1}, {-1}, {1}}, bqm.Spin)
	require.NoError(t, err)
	require.NoError(t, s.SetEnergies([]float64{0, 1, 2}))

	r, err := s.Rows([]int{1, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []float64{1, 1, 2}, r.Energies())
	v, _ := r.Value(0, "a")
	assert.Equal(t, -1.0, v)

	_, err = s.Rows([]int{3})
	assert.ErrorIs(t, err, bqm.ErrOutOfRange)
	_, err = s.Rows(nil)
	assert.ErrorIs(t, err, bqm.ErrEmptySamples)
}

func TestSampleSet_Append(t *testing.T) {
	s, err := bqm.NewSampleSet([]string{"a"}, [][]float64{{1}, {-1}}, bqm.Spin)
	require.NoError(t, err)

	out, err := s.Append([]string{"b", "c"}, [][]float64{{-1, -1}, {1, 1}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, out.Variables())
	row, _ := out.Row(1)
	assert.Equal(t, []float64{-1, -1, 1}, row)

	_, err = s.Append([]string{"b"}, [][]float64{{1}})
	assert.ErrorIs(t, err, bqm.ErrRaggedSamples)
	_, err = s.Append([]string{"a"}, [][]float64{{1, 1}})
	assert.ErrorIs(t, err, bqm.ErrDuplicateLabel)
}

func TestSampleSet_First(t *testing.T) {
	s, err := bqm.NewSampleSet([]string{"a"}, [][]float64{{1}, {-1}, {1}}, bqm.Spin)
	require.NoError(t, err)
	assert.Equal(t, 0, s.First())

	require.NoError(t, s.SetEnergies([]float64{2, -1, -1}))
	assert.Equal(t, 1, s.First())

	assert.ErrorIs(t, s.SetEnergies([]float64{1}), bqm.ErrRaggedSamples)
}

func TestOnes(t *testing.T) {
	s, err := bqm.Ones([]string{"x", "y"}, bqm.Binary)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
	row, _ := s.Row(0)
	assert.Equal(t, []float64{1, 1}, row)
}
