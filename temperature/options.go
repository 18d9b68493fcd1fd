// SPDX-License-Identifier: MIT

package temperature

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
)

// Method selects the root search used by the point estimate.
type Method int

const (
	// MethodBisect searches x = -1/T inside the temperature bracket and clamps
	// to the bracket when the root lies outside it.
	MethodBisect Method = iota

	// MethodNewton runs an unbracketed Newton iteration on D(x). It needs no
	// bracket but is less stable for very large or very small fields.
	MethodNewton
)

// String returns "bisect" or "newton".
func (m Method) String() string {
	switch m {
	case MethodBisect:
		return "bisect"
	case MethodNewton:
		return "newton"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod parses "bisect" or "newton" (case-insensitive).
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bisect", "bisection", "":
		return MethodBisect, nil
	case "newton":
		return MethodNewton, nil
	default:
		return 0, fmt.Errorf("ParseMethod(%q): %w", s, ErrUnknownMethod)
	}
}

// Resample selects how many rows each bootstrap replicate draws.
type Resample int

const (
	// ResampleReplicates draws as many rows as there are replicates.
	ResampleReplicates Resample = iota

	// ResampleSamples draws as many rows as the field has samples.
	ResampleSamples
)

// Default temperature bracket.
const (
	DefaultBracketLo = 1e-3
	DefaultBracketHi = 1000.0
)

// Option customises an estimate. Option constructors panic on meaningless
// values; the bracket is validated by the estimator instead.
type Option func(*config)

type config struct {
	bootstrap int
	seed      int64
	guess     float64 // NaN when unset
	method    Method
	lo, hi    float64
	logger    *slog.Logger
	observer  Observer
	workers   int
	resample  Resample
}

func newConfig(opts []Option) config {
	c := config{
		guess:  math.NaN(),
		method: MethodBisect,
		lo:     DefaultBracketLo,
		hi:     DefaultBracketHi,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// WithBootstrap requests n bootstrap replicates. Panics if n < 0.
func WithBootstrap(n int) Option {
	if n < 0 {
		panic("temperature: WithBootstrap(n<0)")
	}
	return func(c *config) { c.bootstrap = n }
}

// WithSeed seeds the bootstrap index draws. Seed 0 selects a fixed default.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithGuess sets the initial temperature guess. A guess outside the bracket
// is clamped to the nearer bound. Panics unless T > 0.
func WithGuess(T float64) Option {
	if !(T > 0) || math.IsInf(T, 1) {
		panic("temperature: WithGuess(T<=0)")
	}
	return func(c *config) { c.guess = T }
}

// WithMethod selects the root search.
func WithMethod(m Method) Option {
	if m != MethodBisect && m != MethodNewton {
		panic("temperature: WithMethod(unknown)")
	}
	return func(c *config) { c.method = m }
}

// WithBracket sets the temperature bracket (lo, hi). Violations of
// 0 ≤ lo < hi are reported as ErrBadBracket by the estimator.
func WithBracket(lo, hi float64) Option {
	return func(c *config) { c.lo, c.hi = lo, hi }
}

// WithLogger routes notices to l. A nil logger restores the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		c.logger = l
	}
}

// WithObserver attaches an Observer notified of estimates and notices.
func WithObserver(o Observer) Option {
	return func(c *config) { c.observer = o }
}

// WithWorkers bounds the number of bootstrap replicates solved concurrently.
// Zero means GOMAXPROCS. Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("temperature: WithWorkers(n<0)")
	}
	return func(c *config) { c.workers = n }
}

// WithResample selects the bootstrap resample size.
func WithResample(r Resample) Option {
	if r != ResampleReplicates && r != ResampleSamples {
		panic("temperature: WithResample(unknown)")
	}
	return func(c *config) { c.resample = r }
}

func (c *config) validateBracket() error {
	if math.IsNaN(c.lo) || math.IsNaN(c.hi) || !(c.lo >= 0 && c.lo < c.hi) {
		return fmt.Errorf("bracket (%g, %g): %w", c.lo, c.hi, ErrBadBracket)
	}
	return nil
}
