// SPDX-License-Identifier: MIT

package temperature_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thermo/builder"
	"github.com/katalvlaran/thermo/sampler"
	"github.com/katalvlaran/thermo/temperature"
)

func nodes(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = builder.SymbolNumberIDFn("q")(i)
	}
	return out
}

func TestFastEffectiveTemperature_Gibbs(t *testing.T) {
	const T = 0.2
	s := &sampler.GibbsSampler{Temperature: T, Nodes: nodes(500)}
	opts := temperature.DefaultFastOptions()
	opts.Seed = 17
	opts.Params = sampler.Params{sampler.ParamSweeps: 1}

	got, stderr, err := temperature.FastEffectiveTemperature(context.Background(), s, opts)
	require.NoError(t, err)
	assert.InEpsilon(t, T, got, 0.15)
	assert.Zero(t, stderr)
}

func TestFastEstimate_BootstrapDefaultsToReads(t *testing.T) {
	s := &sampler.GibbsSampler{Temperature: 0.3, Nodes: nodes(40)}
	opts := temperature.DefaultFastOptions()
	opts.NumReads = 20
	opts.NumBootstrap = -1
	res, err := temperature.FastEstimate(context.Background(), s, opts)
	require.NoError(t, err)
	assert.Len(t, res.Bootstrap, 20)
	assert.False(t, math.IsNaN(res.StdErr()))
}

func TestFastEstimate_Bracket(t *testing.T) {
	s := &sampler.GibbsSampler{Temperature: 0.2, Nodes: nodes(200)}
	opts := temperature.DefaultFastOptions()
	opts.Method = temperature.MethodBisect
	opts.BracketLo, opts.BracketHi = 5, 6
	res, err := temperature.FastEstimate(context.Background(), s, opts)
	require.NoError(t, err)
	assert.Equal(t, 5.0, res.T)
	assert.True(t, res.HasNotice(temperature.NoticeBelowBracket))

	// Zero bounds fall back to the default bracket.
	opts.BracketLo, opts.BracketHi = 0, 0
	res, err = temperature.FastEstimate(context.Background(), s, opts)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.2, res.T, 0.2)
	assert.Empty(t, res.Notices)
}

func TestFastEstimate_DoesNotMutateParams(t *testing.T) {
	s := &sampler.GibbsSampler{Temperature: 0.3, Nodes: nodes(10)}
	params := sampler.Params{sampler.ParamNumReads: 5}
	opts := temperature.DefaultFastOptions()
	opts.NumReads = 0
	opts.Params = params
	_, err := temperature.FastEstimate(context.Background(), s, opts)
	require.NoError(t, err)
	assert.Equal(t, sampler.Params{sampler.ParamNumReads: 5}, params)
}

func TestFastEstimate_Errors(t *testing.T) {
	ctx := context.Background()
	narrow := &sampler.Range{Lo: -0.1, Hi: 0.1}
	cases := []struct {
		name string
		s    sampler.Sampler
		mod  func(*temperature.FastOptions)
		want error
	}{
		{"nil sampler", nil, nil, temperature.ErrNilSampler},
		{"h range too wide", &sampler.GibbsSampler{Temperature: 1, Nodes: nodes(3), HRange: narrow}, nil, temperature.ErrHRange},
		{"h range inverted", &sampler.GibbsSampler{Temperature: 1, Nodes: nodes(3)},
			func(o *temperature.FastOptions) { o.HRange = sampler.Range{Lo: 1, Hi: -1} }, temperature.ErrHRange},
		{"num_reads conflict", &sampler.GibbsSampler{Temperature: 1, Nodes: nodes(3)},
			func(o *temperature.FastOptions) { o.Params = sampler.Params{sampler.ParamNumReads: 7} }, temperature.ErrIncompatibleParams},
		{"num_reads wrong type", &sampler.GibbsSampler{Temperature: 1, Nodes: nodes(3)},
			func(o *temperature.FastOptions) { o.Params = sampler.Params{sampler.ParamNumReads: "many"} }, temperature.ErrIncompatibleParams},
		{"auto_scale on", &sampler.GibbsSampler{Temperature: 1, Nodes: nodes(3)},
			func(o *temperature.FastOptions) { o.Params = sampler.Params{sampler.ParamAutoScale: true} }, temperature.ErrIncompatibleParams},
		{"inverted bracket", &sampler.GibbsSampler{Temperature: 1, Nodes: nodes(3)},
			func(o *temperature.FastOptions) { o.BracketLo, o.BracketHi = 6, 5 }, temperature.ErrBadBracket},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := temperature.DefaultFastOptions()
			if tc.mod != nil {
				tc.mod(&opts)
			}
			_, _, err := temperature.FastEffectiveTemperature(ctx, tc.s, opts)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFastEstimate_WithinAdvertisedRange(t *testing.T) {
	wide := &sampler.Range{Lo: -1, Hi: 1}
	s := &sampler.GibbsSampler{Temperature: 0.5, Nodes: nodes(20), HRange: wide}
	opts := temperature.DefaultFastOptions()
	opts.NumReads = 10
	_, _, err := temperature.FastEffectiveTemperature(context.Background(), s, opts)
	require.NoError(t, err)
}

func TestFastEstimate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := &sampler.GibbsSampler{Temperature: 0.5, Nodes: nodes(5)}
	_, _, err := temperature.FastEffectiveTemperature(ctx, s, temperature.DefaultFastOptions())
	require.ErrorIs(t, err, context.Canceled)
}
