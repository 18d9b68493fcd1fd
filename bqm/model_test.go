// SPDX-License-Identifier: MIT

package bqm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thermo/bqm"
)

func TestParseVartype(t *testing.T) {
	cases := []struct {
		in      string
		want    bqm.Vartype
		wantErr bool
	}{
		{"SPIN", bqm.Spin, false},
		{"spin", bqm.Spin, false},
		{"ising", bqm.Spin, false},
		{"", bqm.Spin, false},
		{"BINARY", bqm.Binary, false},
		{" qubo ", bqm.Binary, false},
		{"ternary", 0, true},
	}
	for _, tc := range cases {
		got, err := bqm.ParseVartype(tc.in)
		if tc.wantErr {
			assert.ErrorIs(t, err, bqm.ErrUnknownVartype, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
	assert.Equal(t, "SPIN", bqm.Spin.String())
	assert.Equal(t, "BINARY", bqm.Binary.String())
}

func TestModel_AddQuadratic_Symmetric(t *testing.T) {
	m := bqm.NewModel(bqm.Spin)
	require.NoError(t, m.AddQuadratic("a", "b", 1.5))
	require.NoError(t, m.AddQuadratic("b", "a", -0.5))

	got, ok := m.Quadratic("a", "b")
	require.True(t, ok)
	assert.InDelta(t, 1.0, got, 1e-15)
	got, ok = m.Quadratic("b", "a")
	require.True(t, ok)
	assert.InDelta(t, 1.0, got, 1e-15)

	assert.Equal(t, 1, m.NumInteractions())
	assert.Equal(t, []string{"a", "b"}, m.Variables())
	assert.Equal(t, 1, m.Degree("a"))
}

func TestModel_AddQuadratic_Rejects(t *testing.T) {
	m := bqm.NewModel(bqm.Spin)
	assert.ErrorIs(t, m.AddQuadratic("a", "a", 1), bqm.ErrSelfLoop)
	assert.ErrorIs(t, m.AddQuadratic("a", "b", math.NaN()), bqm.ErrNaNInf)
	assert.ErrorIs(t, m.AddLinear("a", math.Inf(1)), bqm.ErrNaNInf)
	assert.ErrorIs(t, m.AddLinear("", 1), bqm.ErrEmptyLabel)
	assert.Equal(t, 0, m.NumVariables())
}

func TestFromIsing_DeterministicOrder(t *testing.T) {
	h := map[string]float64{"c": 1, "a": -1}
	J := map[[2]string]float64{{"b", "a"}: 0.5, {"a", "c"}: -1}
	m, err := bqm.FromIsing(h, J, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "c", "b"}, m.Variables())
	assert.Equal(t, 2.0, m.Offset())
	assert.Equal(t, bqm.Spin, m.Vartype())

	its := m.Interactions()
	require.Len(t, its, 2)
	assert.Equal(t, bqm.Interaction{U: "a", V: "c", Bias: -1}, its[0])
	assert.Equal(t, bqm.Interaction{U: "a", V: "b", Bias: 0.5}, its[1])

	nb := m.Neighbors("a")
	assert.Equal(t, []bqm.Neighbor{{Label: "c", Bias: -1}, {Label: "b", Bias: 0.5}}, nb)
}

func TestFromQUBO_Diagonal(t *testing.T) {
	m, err := bqm.FromQUBO(map[[2]string]float64{
		{"x", "x"}: -1,
		{"x", "y"}: 2,
		{"y", "y"}: 3,
	}, 0)
	require.NoError(t, err)
	assert.Equal(t, bqm.Binary, m.Vartype())
	assert.Equal(t, -1.0, m.Linear("x"))
	assert.Equal(t, 3.0, m.Linear("y"))
	q, ok := m.Quadratic("y", "x")
	assert.True(t, ok)
	assert.Equal(t, 2.0, q)
}

func TestModel_RemoveVariable(t *testing.T) {
	m, err := bqm.FromIsing(map[string]float64{"a": 1, "b": 2, "c": 3},
		map[[2]string]float64{{"a", "b"}: -1, {"b", "c"}: -2, {"a", "c"}: 4}, 0.5)
	require.NoError(t, err)

	m.RemoveVariable("b")
	assert.Equal(t, []string{"a", "c"}, m.Variables())
	assert.Equal(t, 1, m.NumInteractions())
	q, ok := m.Quadratic("a", "c")
	assert.True(t, ok)
	assert.Equal(t, 4.0, q)
	assert.Equal(t, 3.0, m.Linear("c"))
	assert.Equal(t, 0.5, m.Offset())

	m.RemoveVariable("zzz")
	assert.Equal(t, 2, m.NumVariables())
}

func TestModel_CloneIsDeep(t *testing.T) {
	m, err := bqm.FromIsing(map[string]float64{"a": 1}, map[[2]string]float64{{"a", "b"}: 1}, 0)
	require.NoError(t, err)
	c := m.Clone()
	require.NoError(t, c.AddQuadratic("a", "b", 1))
	require.NoError(t, c.AddLinear("a", 1))

	q, _ := m.Quadratic("a", "b")
	assert.Equal(t, 1.0, q)
	assert.Equal(t, 1.0, m.Linear("a"))
	assert.False(t, m.Equal(c))
}

func TestModel_EqualIgnoresOrder(t *testing.T) {
	a := bqm.NewModel(bqm.Spin)
	require.NoError(t, a.AddLinear("x", 1))
	require.NoError(t, a.AddQuadratic("x", "y", 2))

	b := bqm.NewModel(bqm.Spin)
	require.NoError(t, b.AddQuadratic("y", "x", 2))
	require.NoError(t, b.AddLinear("x", 1))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(a.Binary()))
}

func TestModel_VartypeRoundTrip(t *testing.T) {
	m, err := bqm.FromIsing(map[string]float64{"a": 0.3, "b": -1.2, "c": 0},
		map[[2]string]float64{{"a", "b"}: -0.7, {"b", "c"}: 1.1}, 0.25)
	require.NoError(t, err)

	b := m.Binary()
	assert.True(t, m.Equal(b.Spin()))

	// energies agree on every state under x = (s+1)/2
	states := [][]float64{
		{-1, -1, -1}, {-1, 1, -1}, {1, 1, 1}, {1, -1, 1}, {-1, 1, 1},
	}
	for _, s := range states {
		x := make([]float64, len(s))
		for i, v := range s {
			x[i] = (v + 1) / 2
		}
		es, err := m.Energy(s, nil)
		require.NoError(t, err)
		eb, err := b.Energy(x, nil)
		require.NoError(t, err)
		assert.InDelta(t, es, eb, 1e-12, "%v", s)
	}
}

func TestModel_Vectors(t *testing.T) {
	m, err := bqm.FromIsing(map[string]float64{"a": 1, "b": 2, "c": 3},
		map[[2]string]float64{{"a", "b"}: -1, {"b", "c"}: -2}, 0)
	require.NoError(t, err)

	h, rows, cols, data, err := m.Vectors([]string{"c", "b", "a"})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2, 1}, h)
	assert.Equal(t, []int{2, 1}, rows)
	assert.Equal(t, []int{1, 0}, cols)
	assert.Equal(t, []float64{-1, -2}, data)

	_, _, _, _, err = m.Vectors([]string{"a", "b"})
	assert.ErrorIs(t, err, bqm.ErrVariableMismatch)
	_, _, _, _, err = m.Vectors([]string{"a", "a", "b"})
	assert.ErrorIs(t, err, bqm.ErrDuplicateLabel)
}

func TestModel_Energies(t *testing.T) {
	m, err := bqm.FromIsing(map[string]float64{"a": 1},
		map[[2]string]float64{{"a", "b"}: -1}, 0.5)
	require.NoError(t, err)

	s, err := bqm.NewSampleSet([]string{"b", "a"}, [][]float64{{1, 1}, {1, -1}, {-1, -1}}, bqm.Spin)
	require.NoError(t, err)
	e, err := m.Energies(s)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5, -1.5}, e)

	bin := s.Binary()
	e2, err := m.Energies(bin)
	require.NoError(t, err)
	assert.Equal(t, e, e2)
}
