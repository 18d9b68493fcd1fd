// SPDX-License-Identifier: MIT

package sampler_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thermo/bqm"
	"github.com/katalvlaran/thermo/sampler"
)

func TestParams_Getters(t *testing.T) {
	p := sampler.Params{
		"num_reads":  100,
		"sweeps":     float64(20),
		"seed":       int64(7),
		"auto_scale": false,
		"beta":       0.5,
		"bad":        "x",
	}
	n, err := p.Int("num_reads", 1)
	require.NoError(t, err)
	assert.Equal(t, 100, n)

	n, err = p.Int("sweeps", 1)
	require.NoError(t, err)
	assert.Equal(t, 20, n)

	n, err = p.Int("missing", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	s, err := p.Int64("seed", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(7), s)

	b, err := p.Bool("auto_scale", true)
	require.NoError(t, err)
	assert.False(t, b)

	f, err := p.Float("beta", 0)
	require.NoError(t, err)
	assert.Equal(t, 0.5, f)

	_, err = p.Int("bad", 0)
	assert.ErrorIs(t, err, sampler.ErrParamType)
	_, err = p.Int("beta", 0)
	assert.ErrorIs(t, err, sampler.ErrParamType)
	_, err = p.Bool("bad", false)
	assert.ErrorIs(t, err, sampler.ErrParamType)
}

func TestParams_Clone(t *testing.T) {
	var nilParams sampler.Params
	c := nilParams.Clone()
	require.NotNil(t, c)
	c["x"] = 1
	assert.False(t, nilParams.Has("x"))

	p := sampler.Params{"a": 1}
	q := p.Clone()
	q["a"] = 2
	assert.Equal(t, 1, p["a"])
}

func TestRange_Contains(t *testing.T) {
	r := sampler.Range{Lo: -1, Hi: 1}
	assert.True(t, r.Contains(-1))
	assert.True(t, r.Contains(1))
	assert.False(t, r.Contains(1.0001))
}

func TestExactSolver(t *testing.T) {
	m, err := bqm.FromIsing(map[string]float64{"a": 1}, map[[2]string]float64{{"a", "b"}: -1}, 0)
	require.NoError(t, err)

	s, err := sampler.ExactSolver{}.Sample(context.Background(), m, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []string{"a", "b"}, s.Variables())

	row, _ := s.Row(s.First())
	assert.Equal(t, []float64{-1, -1}, row)
	assert.Equal(t, -2.0, s.Energies()[s.First()])

	bin, err := sampler.ExactSolver{}.Sample(context.Background(), m.Binary(), nil)
	require.NoError(t, err)
	assert.Equal(t, bqm.Binary, bin.Vartype())
	assert.InDelta(t, -2.0, bin.Energies()[bin.First()], 1e-12)
}

func TestExactSolver_Limits(t *testing.T) {
	_, err := sampler.ExactSolver{}.Sample(context.Background(), bqm.NewModel(bqm.Spin), nil)
	assert.ErrorIs(t, err, bqm.ErrEmptyModel)

	big := bqm.NewModel(bqm.Spin)
	for i := 0; i <= sampler.MaxExactVariables; i++ {
		require.NoError(t, big.AddLinear(string(rune('A'+i)), 0))
	}
	_, err = sampler.ExactSolver{}.Sample(context.Background(), big, nil)
	assert.ErrorIs(t, err, sampler.ErrTooLarge)
}

func TestGibbsSampler_Uncoupled(t *testing.T) {
	// single spin with h: P(+1) = 1/(1+exp(2h/T))
	const T, h = 0.5, 0.25
	m, err := bqm.FromIsing(map[string]float64{"q": h}, nil, 0)
	require.NoError(t, err)

	g := &sampler.GibbsSampler{Temperature: T}
	s, err := g.Sample(context.Background(), m, sampler.Params{"num_reads": 20000, "sweeps": 1, "seed": 3})
	require.NoError(t, err)
	require.Equal(t, 20000, s.Len())

	up := 0
	for i := 0; i < s.Len(); i++ {
		if v, _ := s.Value(i, "q"); v == 1 {
			up++
		}
	}
	want := 1 / (1 + math.Exp(2*h/T))
	assert.InDelta(t, want, float64(up)/float64(s.Len()), 0.02)
}

func TestGibbsSampler_Deterministic(t *testing.T) {
	m, err := bqm.FromIsing(map[string]float64{"a": 0.1}, map[[2]string]float64{{"a", "b"}: -0.5, {"b", "c"}: 0.3}, 0)
	require.NoError(t, err)
	g := &sampler.GibbsSampler{Temperature: 1}
	p := sampler.Params{"num_reads": 5, "seed": 42}

	s1, err := g.Sample(context.Background(), m, p)
	require.NoError(t, err)
	s2, err := g.Sample(context.Background(), m, p)
	require.NoError(t, err)
	assert.Equal(t, s1.Matrix().RawMatrix().Data, s2.Matrix().RawMatrix().Data)
	assert.Equal(t, s1.Energies(), s2.Energies())
}

func TestGibbsSampler_Errors(t *testing.T) {
	m, err := bqm.FromIsing(map[string]float64{"a": 0.1}, nil, 0)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = (&sampler.GibbsSampler{}).Sample(ctx, m, nil)
	assert.ErrorIs(t, err, sampler.ErrBadTemperature)

	g := &sampler.GibbsSampler{Temperature: 1, Nodes: []string{"x"}}
	_, err = g.Sample(ctx, m, nil)
	assert.ErrorIs(t, err, sampler.ErrUnknownNode)

	g = &sampler.GibbsSampler{Temperature: 1}
	_, err = g.Sample(ctx, m, sampler.Params{"num_reads": 0})
	assert.ErrorIs(t, err, sampler.ErrParamValue)
	_, err = g.Sample(ctx, m, sampler.Params{"auto_scale": true})
	assert.ErrorIs(t, err, sampler.ErrParamValue)

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = g.Sample(cctx, m, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGibbsSampler_Properties(t *testing.T) {
	r := &sampler.Range{Lo: -2, Hi: 2}
	g := &sampler.GibbsSampler{Temperature: 1, Nodes: []string{"a", "b"}, HRange: r}
	props := g.Properties()
	assert.Equal(t, []string{"a", "b"}, props.Nodes)
	assert.Equal(t, r, props.HRange)
}
