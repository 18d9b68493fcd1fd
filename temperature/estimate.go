// SPDX-License-Identifier: MIT

package temperature

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/thermo/bqm"
	"github.com/katalvlaran/thermo/rootfind"
)

// Input carries the data to estimate from. Field wins when set; otherwise
// Model and Samples are both required and the excitation field is derived.
type Input struct {
	Model   *bqm.Model
	Samples *bqm.SampleSet
	Field   *Field
}

// Result is a temperature estimate.
type Result struct {
	// T is the estimate: in the bracket for MethodBisect, 0 when no
	// excitation was observed.
	T float64
	// Bootstrap holds one estimate per replicate (zeros in the degenerate case).
	Bootstrap []float64
	// Notices lists the diagnostics raised by the point estimate.
	Notices []Notice
	// Root is the raw search result in x = -1/T (zero value when no search ran).
	Root rootfind.Result
	// MaxExcitation is the largest excitation in the field.
	MaxExcitation float64
}

// StdErr returns the population standard deviation of the bootstrap
// estimates, or 0 without replicates.
func (r Result) StdErr() float64 {
	if len(r.Bootstrap) == 0 {
		return 0
	}
	return stat.PopStdDev(r.Bootstrap, nil)
}

// HasNotice reports whether a notice of kind k was raised.
func (r Result) HasNotice(k NoticeKind) bool {
	for _, n := range r.Notices {
		if n.Kind == k {
			return true
		}
	}
	return false
}

// MaximumPseudoLikelihood estimates the temperature maximising the
// pseudo-likelihood of the samples under the model.
//
// Errors: ErrMissingInput, ErrFieldForm, ErrBadBracket, plus any bqm error
// raised while deriving the field. Clamps and the zero-excitation case are
// reported as notices.
func MaximumPseudoLikelihood(in Input, opts ...Option) (Result, error) {
	c := newConfig(opts)
	if err := c.validateBracket(); err != nil {
		return Result{}, fmt.Errorf("MaximumPseudoLikelihood: %w", err)
	}
	field, err := in.field()
	if err != nil {
		return Result{}, fmt.Errorf("MaximumPseudoLikelihood: %w", err)
	}

	p := c.estimatePoint(field, c.guess)
	res := Result{T: p.T, Notices: p.Notices, Root: p.Root, MaxExcitation: p.MaxExc}
	if c.bootstrap == 0 {
		return res, nil
	}
	if p.MaxExc <= 0 {
		res.Bootstrap = make([]float64, c.bootstrap)
		return res, nil
	}
	res.Bootstrap, err = c.runBootstrap(field, p.T)
	if err != nil {
		return Result{}, fmt.Errorf("MaximumPseudoLikelihood: %w", err)
	}
	return res, nil
}

func (in Input) field() (*Field, error) {
	if in.Field != nil {
		if in.Field.Form != Excitation {
			return nil, fmt.Errorf("field form %s: %w", in.Field.Form, ErrFieldForm)
		}
		if in.Field.Values == nil || in.Field.Values.IsEmpty() {
			return nil, ErrFieldShape
		}
		return in.Field, nil
	}
	if in.Model == nil || in.Samples == nil {
		return nil, ErrMissingInput
	}
	return EffectiveField(in.Model, in.Samples, Excitation)
}
