// SPDX-License-Identifier: MIT

package sampler

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/thermo/bqm"
)

// Sampler draws samples from a binary quadratic model.
type Sampler interface {
	// Sample returns samples over the model's variables in the model's vartype.
	Sample(ctx context.Context, m *bqm.Model, p Params) (*bqm.SampleSet, error)
	// Properties describes the sampler's programmable surface.
	Properties() Properties
}

// Range is a closed interval [Lo, Hi].
type Range struct {
	Lo, Hi float64
}

// Contains reports whether x lies in [Lo, Hi].
func (r Range) Contains(x float64) bool { return x >= r.Lo && x <= r.Hi }

// Properties describes a sampler.
type Properties struct {
	// Nodes lists the variables the sampler accepts; nil means any.
	Nodes []string
	// HRange is the programmable linear-bias range; nil means unbounded.
	HRange *Range
}

// Well-known parameter names.
const (
	ParamNumReads  = "num_reads"
	ParamSeed      = "seed"
	ParamSweeps    = "sweeps"
	ParamAutoScale = "auto_scale"
)

// Params holds sampler parameters by name.
type Params map[string]any

// Clone returns a shallow copy; a nil receiver yields an empty map.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Has reports whether key is set.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Int returns p[key] as an int, or def when absent. Integral floats are
// accepted.
func (p Params) Int(key string, def int) (int, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	switch x := v.(type) {
	case int:
		return x, nil
	case int32:
		return int(x), nil
	case int64:
		return int(x), nil
	case uint:
		return int(x), nil
	case float64:
		if x == math.Trunc(x) && !math.IsInf(x, 0) {
			return int(x), nil
		}
	}
	return 0, fmt.Errorf("param %s=%v (%T): %w", key, v, v, ErrParamType)
}

// Int64 is Int for 64-bit values such as seeds.
func (p Params) Int64(key string, def int64) (int64, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	switch x := v.(type) {
	case int64:
		return x, nil
	case int:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case float64:
		if x == math.Trunc(x) && !math.IsInf(x, 0) {
			return int64(x), nil
		}
	}
	return 0, fmt.Errorf("param %s=%v (%T): %w", key, v, v, ErrParamType)
}

// Float returns p[key] as a float64, or def when absent.
func (p Params) Float(key string, def float64) (float64, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	}
	return 0, fmt.Errorf("param %s=%v (%T): %w", key, v, v, ErrParamType)
}

// Bool returns p[key] as a bool, or def when absent.
func (p Params) Bool(key string, def bool) (bool, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("param %s=%v (%T): %w", key, v, v, ErrParamType)
	}
	return b, nil
}

// checkNodes verifies that every model variable is an advertised node.
func checkNodes(m *bqm.Model, nodes []string) error {
	if nodes == nil {
		return nil
	}
	known := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		known[n] = struct{}{}
	}
	for _, v := range m.Variables() {
		if _, ok := known[v]; !ok {
			return fmt.Errorf("variable %q: %w", v, ErrUnknownNode)
		}
	}
	return nil
}
