// SPDX-License-Identifier: MIT

package rootfind

import (
	"fmt"
	"math"
)

// maxExpand bounds the doublings used to replace an infinite endpoint.
const maxExpand = 1100

// Bisect finds a root of f in [a, b].
//
// f(a) and f(b) must not have the same strict sign. If either endpoint is
// already a root it is returned without iterating. x0 is used as the first
// split point when it lies strictly inside the (finite) bracket; pass NaN to
// start at the midpoint.
//
// The search stops when half the bracket width drops below
// opts.XTol + opts.RTol·|x|, or after opts.MaxIter splits, in which case the
// midpoint of the last bracket is returned with Converged=false.
func Bisect(f Func, a, b, x0 float64, opts Options) (Result, error) {
	if f == nil {
		return Result{}, ErrNilFunc
	}
	if math.IsNaN(a) || math.IsNaN(b) || !(a < b) {
		return Result{}, fmt.Errorf("Bisect: [%g, %g]: %w", a, b, ErrBadBracket)
	}
	opts = opts.withDefaults(defaultBisectIter)

	var res Result
	fa, fb := f(a), f(b)
	res.FuncCalls = 2
	switch {
	case fa == 0:
		res.Root, res.Converged, res.Flag = a, true, FlagConverged
		return res, nil
	case fb == 0:
		res.Root, res.Converged, res.Flag = b, true, FlagConverged
		return res, nil
	case math.Signbit(fa) == math.Signbit(fb):
		return res, fmt.Errorf("Bisect: f(%g)=%g, f(%g)=%g: %w", a, fa, b, fb, ErrNoBracket)
	}

	var err error
	if math.IsInf(a, -1) {
		a, fa, err = expand(f, b, fb, -1, &res)
	} else if math.IsInf(b, 1) {
		b, fb, err = expand(f, a, fa, +1, &res)
	}
	if err != nil {
		return res, fmt.Errorf("Bisect: %w", err)
	}
	if fa == 0 || fb == 0 {
		res.Root, res.Converged, res.Flag = a, true, FlagConverged
		if fb == 0 {
			res.Root = b
		}
		return res, nil
	}

	lo, hi, flo := a, b, fa
	x := x0
	if !(x > lo && x < hi) {
		x = lo + (hi-lo)/2
	}
	for res.Iterations < opts.MaxIter {
		res.Iterations++
		fx := f(x)
		res.FuncCalls++
		if fx == 0 {
			res.Root, res.Converged, res.Flag = x, true, FlagConverged
			return res, nil
		}
		if math.Signbit(fx) == math.Signbit(flo) {
			lo, flo = x, fx
		} else {
			hi = x
		}
		half := (hi - lo) / 2
		x = lo + half
		if half < opts.XTol+opts.RTol*math.Abs(x) {
			res.Root, res.Converged, res.Flag = x, true, FlagConverged
			return res, nil
		}
	}
	res.Root, res.Flag = x, FlagMaxIter
	return res, nil
}

// expand walks from the finite endpoint from (where f = ffrom) in direction
// dir with doubling steps until f changes sign, and returns the new endpoint.
func expand(f Func, from, ffrom float64, dir float64, res *Result) (float64, float64, error) {
	step := math.Max(1, math.Abs(from))
	for i := 0; i < maxExpand; i++ {
		x := from + dir*step
		if math.IsInf(x, 0) {
			break
		}
		fx := f(x)
		res.FuncCalls++
		if fx == 0 || math.Signbit(fx) != math.Signbit(ffrom) {
			return x, fx, nil
		}
		step *= 2
	}
	return 0, 0, fmt.Errorf("no sign change found from %g: %w", from, ErrNoBracket)
}
