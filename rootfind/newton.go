// SPDX-License-Identifier: MIT

package rootfind

import "math"

// Newton runs Newton–Raphson from x0 using fprime as the derivative of f.
// With fprime == nil it runs the secant method, seeding the second point at
// x0·(1+1e-4) ± 1e-4.
//
// Iteration stops when a step is shorter than opts.Tol. A zero derivative,
// a flat secant or exhausting opts.MaxIter ends the search with
// Converged=false and the last iterate as Root. Only a nil f is an error.
func Newton(f, fprime Func, x0 float64, opts Options) (Result, error) {
	if f == nil {
		return Result{}, ErrNilFunc
	}
	opts = opts.withDefaults(defaultNewtonIter)
	if fprime == nil {
		return secant(f, x0, opts), nil
	}

	var res Result
	p0 := x0
	for res.Iterations < opts.MaxIter {
		res.Iterations++
		fval := f(p0)
		res.FuncCalls++
		if fval == 0 {
			res.Root, res.Converged, res.Flag = p0, true, FlagConverged
			return res, nil
		}
		fder := fprime(p0)
		res.FuncCalls++
		if fder == 0 {
			res.Root, res.Flag = p0, FlagZeroDerivative
			return res, nil
		}
		p := p0 - fval/fder
		if math.Abs(p-p0) < opts.Tol {
			res.Root, res.Converged, res.Flag = p, true, FlagConverged
			return res, nil
		}
		p0 = p
	}
	res.Root, res.Flag = p0, FlagMaxIter
	return res, nil
}

func secant(f Func, x0 float64, opts Options) Result {
	const delta = 1e-4
	var res Result
	p0 := x0
	p1 := x0 * (1 + delta)
	if x0 >= 0 {
		p1 += delta
	} else {
		p1 -= delta
	}
	q0, q1 := f(p0), f(p1)
	res.FuncCalls = 2
	if math.Abs(q1) < math.Abs(q0) {
		p0, p1, q0, q1 = p1, p0, q1, q0
	}
	for res.Iterations < opts.MaxIter {
		res.Iterations++
		if q1 == q0 {
			res.Root, res.Flag = (p0+p1)/2, FlagFlatSecant
			if p1 == p0 {
				res.Converged, res.Flag = true, FlagConverged
			}
			return res
		}
		var p float64
		if math.Abs(q1) > math.Abs(q0) {
			p = (-q0/q1*p1 + p0) / (1 - q0/q1)
		} else {
			p = (-q1/q0*p0 + p1) / (1 - q1/q0)
		}
		if math.Abs(p-p1) < opts.Tol {
			res.Root, res.Converged, res.Flag = p, true, FlagConverged
			return res
		}
		p0, q0 = p1, q1
		p1 = p
		q1 = f(p1)
		res.FuncCalls++
	}
	res.Root, res.Flag = p1, FlagMaxIter
	return res
}
