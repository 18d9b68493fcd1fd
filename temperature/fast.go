// SPDX-License-Identifier: MIT

package temperature

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/thermo/bqm"
	"github.com/katalvlaran/thermo/builder"
	"github.com/katalvlaran/thermo/sampler"
)

// DefaultHRange is the linear-bias range programmed by a fast estimate.
var DefaultHRange = sampler.Range{Lo: -1 / 6.1, Hi: 1 / 6.1}

// DefaultNumReads is the read count requested when none is given.
const DefaultNumReads = 100

// FastOptions configures FastEffectiveTemperature. Zero fields take the
// defaults of DefaultFastOptions, except Method whose zero value is
// MethodBisect.
type FastOptions struct {
	// NumReads is the number of samples requested; 0 defers to
	// Params["num_reads"] or DefaultNumReads.
	NumReads int
	// Seed drives the random linear biases and the bootstrap draws.
	Seed int64
	// HRange bounds the random linear biases; the zero Range means DefaultHRange.
	HRange sampler.Range
	// Params are extra sampler parameters. They are copied, never mutated.
	Params sampler.Params
	Method Method
	// BracketLo and BracketHi bound the estimate; both zero means
	// DefaultBracketLo and DefaultBracketHi.
	BracketLo, BracketHi float64
	// NumBootstrap is the replicate count; negative means NumReads.
	NumBootstrap int
	Workers      int
	Logger       *slog.Logger
	Observer     Observer
}

// DefaultFastOptions returns the recommended settings: Newton search, no
// bootstrap, the default bracket, DefaultHRange and DefaultNumReads.
func DefaultFastOptions() FastOptions {
	return FastOptions{
		NumReads:  DefaultNumReads,
		HRange:    DefaultHRange,
		Method:    MethodNewton,
		BracketLo: DefaultBracketLo,
		BracketHi: DefaultBracketHi,
	}
}

// FastEffectiveTemperature estimates the temperature of s on single-variable
// problems. Every node in s.Properties().Nodes gets a linear bias drawn
// uniformly from opts.HRange, the uncoupled model is sampled with
// auto_scale disabled, and the samples are passed to MaximumPseudoLikelihood.
//
// It returns the estimate and the bootstrap standard error (0 without
// replicates).
//
// Errors: ErrNilSampler; ErrBadBracket; ErrHRange when opts.HRange leaves
// the sampler's programmable range; ErrIncompatibleParams when Params
// disagree with NumReads or enable auto_scale; sampler and estimator errors
// are wrapped.
func FastEffectiveTemperature(ctx context.Context, s sampler.Sampler, opts FastOptions) (float64, float64, error) {
	res, err := FastEstimate(ctx, s, opts)
	if err != nil {
		return 0, 0, err
	}
	return res.T, res.StdErr(), nil
}

// FastEstimate is FastEffectiveTemperature returning the full Result.
func FastEstimate(ctx context.Context, s sampler.Sampler, opts FastOptions) (Result, error) {
	if s == nil {
		return Result{}, fmt.Errorf("FastEstimate: %w", ErrNilSampler)
	}
	props := s.Properties()
	hr := opts.HRange
	if hr == (sampler.Range{}) {
		hr = DefaultHRange
	}
	if err := checkHRange(hr, props.HRange); err != nil {
		return Result{}, fmt.Errorf("FastEstimate: %w", err)
	}
	if len(props.Nodes) == 0 {
		return Result{}, fmt.Errorf("FastEstimate: sampler reports no nodes: %w", bqm.ErrEmptyModel)
	}

	params, reads, err := fastParams(opts.Params, opts.NumReads)
	if err != nil {
		return Result{}, fmt.Errorf("FastEstimate: %w", err)
	}
	nboot := opts.NumBootstrap
	if nboot < 0 {
		nboot = reads
	}

	lo, hi := opts.BracketLo, opts.BracketHi
	if lo == 0 && hi == 0 {
		lo, hi = DefaultBracketLo, DefaultBracketHi
	}
	if err := (&config{lo: lo, hi: hi}).validateBracket(); err != nil {
		return Result{}, fmt.Errorf("FastEstimate: %w", err)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	m, err := builder.BuildModel(bqm.Spin,
		[]builder.Option{builder.WithSeed(seed), builder.WithUniformLinear(hr.Lo, hr.Hi)},
		builder.FromLabels(props.Nodes))
	if err != nil {
		return Result{}, fmt.Errorf("FastEstimate: %w", err)
	}

	samples, err := s.Sample(ctx, m, params)
	if err != nil {
		return Result{}, fmt.Errorf("FastEstimate: sample: %w", err)
	}

	return MaximumPseudoLikelihood(Input{Model: m, Samples: samples},
		WithMethod(opts.Method),
		WithBracket(lo, hi),
		WithBootstrap(nboot),
		WithSeed(seed),
		WithWorkers(opts.Workers),
		WithLogger(opts.Logger),
		WithObserver(opts.Observer),
	)
}

func checkHRange(hr sampler.Range, limit *sampler.Range) error {
	if !(hr.Lo <= hr.Hi) {
		return fmt.Errorf("h range [%g, %g] is inverted: %w", hr.Lo, hr.Hi, ErrHRange)
	}
	if limit == nil {
		return nil
	}
	if hr.Lo < limit.Lo {
		return fmt.Errorf("h range low %g below %g: %w", hr.Lo, limit.Lo, ErrHRange)
	}
	if hr.Hi > limit.Hi {
		return fmt.Errorf("h range high %g above %g: %w", hr.Hi, limit.Hi, ErrHRange)
	}
	return nil
}

// fastParams copies p, settles num_reads and forces auto_scale off.
func fastParams(p sampler.Params, numReads int) (sampler.Params, int, error) {
	out := p.Clone()
	reads, err := out.Int(sampler.ParamNumReads, 0)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", err, ErrIncompatibleParams)
	}
	switch {
	case numReads == 0 && !out.Has(sampler.ParamNumReads):
		reads = DefaultNumReads
	case numReads == 0:
	case out.Has(sampler.ParamNumReads) && reads != numReads:
		return nil, 0, fmt.Errorf("num_reads %d vs params %d: %w", numReads, reads, ErrIncompatibleParams)
	default:
		reads = numReads
	}
	out[sampler.ParamNumReads] = reads

	auto, err := out.Bool(sampler.ParamAutoScale, false)
	if err != nil || auto {
		return nil, 0, fmt.Errorf("auto_scale must be false: %w", ErrIncompatibleParams)
	}
	out[sampler.ParamAutoScale] = false
	return out, reads, nil
}
