// SPDX-License-Identifier: MIT

package temperature_test

import (
	"bytes"
	"log/slog"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/thermo/bqm"
	"github.com/katalvlaran/thermo/builder"
	"github.com/katalvlaran/thermo/temperature"
)

// excitations wraps rows as an Excitation field over labels "0".."n-1".
func excitations(t *testing.T, rows ...[]float64) *temperature.Field {
	t.Helper()
	c := len(rows[0])
	d := mat.NewDense(len(rows), c, nil)
	for i, r := range rows {
		d.SetRow(i, r)
	}
	labels := make([]string, c)
	for j := range labels {
		labels[j] = builder.DefaultIDFn(j)
	}
	f, err := temperature.NewField(d, labels, temperature.Excitation)
	require.NoError(t, err)
	return f
}

// One flip up by 2 and three flips down by 2 zero D at T = 2/ln 3.
var wantT = 2 / math.Log(3)

func TestMPL_ClosedForm(t *testing.T) {
	f := excitations(t, []float64{2, -2, -2, -2})
	for _, m := range []temperature.Method{temperature.MethodBisect, temperature.MethodNewton} {
		t.Run(m.String(), func(t *testing.T) {
			res, err := temperature.MaximumPseudoLikelihood(temperature.Input{Field: f}, temperature.WithMethod(m))
			require.NoError(t, err)
			assert.InDelta(t, wantT, res.T, 1e-7)
			assert.True(t, res.Root.Converged)
			assert.Empty(t, res.Notices)
			assert.Equal(t, 2.0, res.MaxExcitation)
		})
	}
}

func TestMPL_GuessDoesNotChangeRoot(t *testing.T) {
	f := excitations(t, []float64{2, -2, -2, -2})
	for _, g := range []float64{1e-6, 0.5, 50, 1e6} {
		res, err := temperature.MaximumPseudoLikelihood(temperature.Input{Field: f}, temperature.WithGuess(g))
		require.NoError(t, err)
		assert.InDelta(t, wantT, res.T, 1e-7, "guess %g", g)
	}
}

func TestMPL_FromModelAndSamples(t *testing.T) {
	m, err := bqm.FromIsing(map[string]float64{"a": 1, "b": 1, "c": 1, "d": -1}, nil, 0)
	require.NoError(t, err)
	// Excitations 2·s·h: a=+2 (flip lowers energy), others -2.
	s, err := bqm.NewSampleSet([]string{"a", "b", "c", "d"}, [][]float64{{1, -1, -1, 1}}, bqm.Spin)
	require.NoError(t, err)
	res, err := temperature.MaximumPseudoLikelihood(temperature.Input{Model: m, Samples: s})
	require.NoError(t, err)
	assert.InDelta(t, wantT, res.T, 1e-7)
}

func TestMPL_ClampBelow(t *testing.T) {
	f := excitations(t, []float64{1, -1, -1, -1})
	res, err := temperature.MaximumPseudoLikelihood(temperature.Input{Field: f}, temperature.WithBracket(1, 1000))
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.T)
	require.True(t, res.HasNotice(temperature.NoticeBelowBracket))
	assert.Equal(t, 1.0, res.Notices[0].Bound)
}

func TestMPL_ClampAbove(t *testing.T) {
	f := excitations(t, []float64{1, 1, -1})
	res, err := temperature.MaximumPseudoLikelihood(temperature.Input{Field: f}, temperature.WithBracket(0.1, 10))
	require.NoError(t, err)
	assert.Equal(t, 10.0, res.T)
	assert.True(t, res.HasNotice(temperature.NoticeAboveBracket))
}

func TestMPL_ZeroLowerBound(t *testing.T) {
	f := excitations(t, []float64{2, -2, -2, -2})
	res, err := temperature.MaximumPseudoLikelihood(temperature.Input{Field: f}, temperature.WithBracket(0, 100))
	require.NoError(t, err)
	assert.InDelta(t, wantT, res.T, 1e-7)
}

func TestMPL_NoExcitations(t *testing.T) {
	f := excitations(t, []float64{-1, -2, 0}, []float64{-3, 0, -1})
	res, err := temperature.MaximumPseudoLikelihood(temperature.Input{Field: f}, temperature.WithBootstrap(4))
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.T)
	assert.Equal(t, []float64{0, 0, 0, 0}, res.Bootstrap)
	assert.Equal(t, 0.0, res.StdErr())
	assert.True(t, res.HasNotice(temperature.NoticeNoExcitations))
}

func TestMPL_Errors(t *testing.T) {
	f := excitations(t, []float64{2, -2})
	cases := []struct {
		name string
		in   temperature.Input
		opts []temperature.Option
		want error
	}{
		{"inverted bracket", temperature.Input{Field: f}, []temperature.Option{temperature.WithBracket(5, 1)}, temperature.ErrBadBracket},
		{"negative lo", temperature.Input{Field: f}, []temperature.Option{temperature.WithBracket(-1, 1)}, temperature.ErrBadBracket},
		{"nan hi", temperature.Input{Field: f}, []temperature.Option{temperature.WithBracket(1, math.NaN())}, temperature.ErrBadBracket},
		{"bracket checked for newton", temperature.Input{Field: f},
			[]temperature.Option{temperature.WithMethod(temperature.MethodNewton), temperature.WithBracket(2, 2)}, temperature.ErrBadBracket},
		{"missing", temperature.Input{}, nil, temperature.ErrMissingInput},
		{"model only", temperature.Input{Model: bqm.NewModel(bqm.Spin)}, nil, temperature.ErrMissingInput},
		{"field form", temperature.Input{Field: &temperature.Field{Values: f.Values, Variables: f.Variables, Form: temperature.FieldOnly}},
			nil, temperature.ErrFieldForm},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := temperature.MaximumPseudoLikelihood(tc.in, tc.opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMPL_NoticesAreLogged(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	f := excitations(t, []float64{1, -1, -1, -1})
	_, err := temperature.MaximumPseudoLikelihood(temperature.Input{Field: f},
		temperature.WithBracket(1, 1000), temperature.WithLogger(l))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "kind=below_bracket")
}

// recorder is an Observer collecting every event.
type recorder struct {
	mu        sync.Mutex
	estimates int
	bootstrap []int
	notices   []temperature.NoticeKind
}

func (r *recorder) ObserveEstimate(temperature.Method, float64, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.estimates++
}

func (r *recorder) ObserveBootstrap(n int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bootstrap = append(r.bootstrap, n)
}

func (r *recorder) ObserveNotice(n temperature.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n.Kind)
}

func TestMPL_Observer(t *testing.T) {
	rec := &recorder{}
	f := excitations(t, []float64{2, -2, -2, -2}, []float64{-2, 2, -2, -2})
	_, err := temperature.MaximumPseudoLikelihood(temperature.Input{Field: f},
		temperature.WithBootstrap(5), temperature.WithObserver(rec))
	require.NoError(t, err)
	assert.Equal(t, 6, rec.estimates)
	assert.Equal(t, []int{5}, rec.bootstrap)

	rec = &recorder{}
	_, err = temperature.MaximumPseudoLikelihood(temperature.Input{Field: excitations(t, []float64{-1})},
		temperature.WithObserver(rec))
	require.NoError(t, err)
	assert.Equal(t, []temperature.NoticeKind{temperature.NoticeNoExcitations}, rec.notices)
}

func TestParseMethod(t *testing.T) {
	m, err := temperature.ParseMethod("Newton")
	require.NoError(t, err)
	assert.Equal(t, temperature.MethodNewton, m)
	m, err = temperature.ParseMethod("")
	require.NoError(t, err)
	assert.Equal(t, temperature.MethodBisect, m)
	_, err = temperature.ParseMethod("brent")
	require.ErrorIs(t, err, temperature.ErrUnknownMethod)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { temperature.WithBootstrap(-1) })
	assert.Panics(t, func() { temperature.WithGuess(0) })
	assert.Panics(t, func() { temperature.WithWorkers(-2) })
	assert.Panics(t, func() { temperature.WithMethod(temperature.Method(9)) })
}

func TestMaximumPseudoLikelihood_ExtremeExcitations(t *testing.T) {
	fields := map[string][]float64{
		"huge":  {1e300, -1e300, -1e300},
		"mixed": {1e-300, 5, -7},
	}
	for name, row := range fields {
		for _, m := range []temperature.Method{temperature.MethodBisect, temperature.MethodNewton} {
			t.Run(name+"/"+m.String(), func(t *testing.T) {
				f := excitations(t, row)
				var (
					res temperature.Result
					err error
				)
				require.NotPanics(t, func() {
					res, err = temperature.MaximumPseudoLikelihood(temperature.Input{Field: f}, temperature.WithMethod(m))
				})
				require.NoError(t, err)
				assert.False(t, math.IsNaN(res.T))
				assert.False(t, math.IsInf(res.T, 0))
				assert.Positive(t, res.T)
				if m == temperature.MethodBisect {
					assert.GreaterOrEqual(t, res.T, temperature.DefaultBracketLo)
					assert.LessOrEqual(t, res.T, temperature.DefaultBracketHi)
				}
			})
		}
	}
}
