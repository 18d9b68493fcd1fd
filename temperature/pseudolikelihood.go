// SPDX-License-Identifier: MIT

package temperature

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/thermo/rootfind"
)

// dLogPL returns D(x) = Σ f/(1+exp(f·x)) over the excitations f.
// exp overflows to +Inf and the term saturates to 0; zero excitations are
// skipped so x = -Inf stays well defined.
func dLogPL(f []float64) rootfind.Func {
	return func(x float64) float64 {
		var sum float64
		for _, v := range f {
			if v == 0 {
				continue
			}
			sum += v / (1 + math.Exp(v*x))
		}
		return sum
	}
}

// ddLogPL returns D'(x) = Σ -f²/(exp(f·x) + 2 + exp(-f·x)).
func ddLogPL(f []float64) rootfind.Func {
	return func(x float64) float64 {
		var sum float64
		for _, v := range f {
			if v == 0 {
				continue
			}
			e := math.Exp(v * x)
			sum -= v * v / (e + 2 + 1/e)
		}
		return sum
	}
}

// point is the outcome of one point estimate.
type point struct {
	T       float64
	Root    rootfind.Result
	MaxExc  float64
	Notices []Notice
}

// estimatePoint solves D(x) = 0 for one excitation matrix. guess is NaN when
// unset. The bracket must already be validated.
func (c *config) estimatePoint(field *Field, guess float64) point {
	start := time.Now()
	vals := field.flat()
	p := point{MaxExc: floats.Max(vals)}
	defer func() {
		for _, n := range p.Notices {
			c.emit(n, p.T)
		}
		if c.observer != nil {
			c.observer.ObserveEstimate(c.method, p.T, time.Since(start))
		}
	}()

	if p.MaxExc <= 0 {
		p.Notices = append(p.Notices, noExcitations())
		return p
	}

	D := dLogPL(vals)
	x0 := c.initialX(guess, p.MaxExc)

	if c.method == MethodNewton {
		res, _ := rootfind.Newton(D, ddLogPL(vals), x0, rootfind.Options{})
		p.Root = res
		p.T = -1 / res.Root
		if !res.Converged {
			p.Notices = append(p.Notices, notConverged(res.Flag))
		}
		return p
	}

	a, b := -1/c.lo, -1/c.hi // lo == 0 gives -Inf
	if D(a) < 0 {
		p.T = c.lo
		p.Notices = append(p.Notices, belowBracket(c.lo))
		return p
	}
	if D(b) > 0 {
		p.T = c.hi
		p.Notices = append(p.Notices, aboveBracket(c.hi))
		return p
	}
	if x0 < a || x0 > b {
		x0 = math.NaN() // midpoint
	}
	res, err := rootfind.Bisect(D, a, b, x0, rootfind.Options{})
	if err != nil {
		// unreachable while D is non-increasing
		p.T = c.lo
		p.Notices = append(p.Notices, belowBracket(c.lo))
		return p
	}
	p.Root = res
	p.T = -1 / res.Root
	if !res.Converged {
		p.Notices = append(p.Notices, notConverged(res.Flag))
	}
	return p
}

// initialX picks the starting point in x = -1/T: the guess clamped into the
// bracket, or -1/maxExc without a guess.
func (c *config) initialX(guess, maxExc float64) float64 {
	if math.IsNaN(guess) {
		return -1 / maxExc
	}
	switch {
	case guess < c.lo:
		return -1 / c.lo
	case guess > c.hi:
		return -1 / c.hi
	default:
		return -1 / guess
	}
}
