// SPDX-License-Identifier: MIT

package rootfind

// Func is a scalar function of one variable.
type Func func(x float64) float64

// Options tunes both searches. Zero fields fall back to DefaultOptions.
type Options struct {
	// XTol is the absolute tolerance on the root (Bisect).
	XTol float64
	// RTol is the relative tolerance on the root (Bisect).
	RTol float64
	// Tol is the step tolerance of Newton and secant iterations.
	Tol float64
	// MaxIter bounds the number of iterations (100 for Bisect, 50 for Newton
	// when left at zero).
	MaxIter int
}

// DefaultOptions returns the tolerances used when a field is left at zero.
func DefaultOptions() Options {
	return Options{
		XTol: 2e-12,
		RTol: 4 * eps,
		Tol:  1.48e-8,
	}
}

// eps is the machine epsilon of float64.
const eps = 2.220446049250313e-16

const (
	defaultBisectIter = 100
	defaultNewtonIter = 50
)

// Result describes a finished search.
type Result struct {
	Root       float64
	Iterations int
	FuncCalls  int
	Converged  bool
	// Flag names the stopping reason.
	Flag string
}

// Flags reported in Result.Flag.
const (
	FlagConverged      = "converged"
	FlagMaxIter        = "maximum iterations exceeded"
	FlagZeroDerivative = "derivative was zero"
	FlagFlatSecant     = "secant slope was zero"
)

func (o Options) withDefaults(iter int) Options {
	d := DefaultOptions()
	if o.XTol <= 0 {
		o.XTol = d.XTol
	}
	if o.RTol <= 0 {
		o.RTol = d.RTol
	}
	if o.Tol <= 0 {
		o.Tol = d.Tol
	}
	if o.MaxIter <= 0 {
		o.MaxIter = iter
	}
	return o
}
