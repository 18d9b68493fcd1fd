// SPDX-License-Identifier: MIT

package sampler

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/thermo/bqm"
)

// Gibbs sampler defaults.
const (
	DefaultGibbsReads  = 10
	DefaultGibbsSweeps = 100
	defaultGibbsSeed   = 1
)

// GibbsSampler draws approximate Boltzmann samples P(s) ∝ exp(-E(s)/T) by
// heat-bath sweeps from a uniformly random start. Uncoupled models are
// sampled exactly after one sweep.
//
// Params: num_reads (reads), sweeps (sweeps per read), seed (0 means a fixed
// default). auto_scale is accepted and must be false: biases are used as
// given.
type GibbsSampler struct {
	// Temperature T > 0 of the target distribution.
	Temperature float64
	// Nodes restricts accepted variables when non-nil.
	Nodes []string
	// HRange is advertised through Properties when non-nil.
	HRange *Range
}

// Properties exposes the node list and h range.
func (g *GibbsSampler) Properties() Properties {
	return Properties{Nodes: append([]string(nil), g.Nodes...), HRange: g.HRange}
}

// Sample runs num_reads independent chains and returns their final states
// with energies. Cancellation is checked between reads.
//
// Complexity: O(reads · sweeps · (n + E)).
func (g *GibbsSampler) Sample(ctx context.Context, m *bqm.Model, p Params) (*bqm.SampleSet, error) {
	if !(g.Temperature > 0) || math.IsInf(g.Temperature, 0) {
		return nil, fmt.Errorf("GibbsSampler: T=%g: %w", g.Temperature, ErrBadTemperature)
	}
	if m.NumVariables() == 0 {
		return nil, fmt.Errorf("GibbsSampler: %w", bqm.ErrEmptyModel)
	}
	if err := checkNodes(m, g.Nodes); err != nil {
		return nil, fmt.Errorf("GibbsSampler: %w", err)
	}
	reads, err := p.Int(ParamNumReads, DefaultGibbsReads)
	if err != nil {
		return nil, fmt.Errorf("GibbsSampler: %w", err)
	}
	sweeps, err := p.Int(ParamSweeps, DefaultGibbsSweeps)
	if err != nil {
		return nil, fmt.Errorf("GibbsSampler: %w", err)
	}
	if reads < 1 || sweeps < 1 {
		return nil, fmt.Errorf("GibbsSampler: num_reads=%d sweeps=%d: %w", reads, sweeps, ErrParamValue)
	}
	seed, err := p.Int64(ParamSeed, 0)
	if err != nil {
		return nil, fmt.Errorf("GibbsSampler: %w", err)
	}
	if seed == 0 {
		seed = defaultGibbsSeed
	}
	if auto, err := p.Bool(ParamAutoScale, false); err != nil || auto {
		return nil, fmt.Errorf("GibbsSampler: auto_scale must be false: %w", ErrParamValue)
	}

	spin := m.Spin()
	h, rows, cols, data, err := spin.Vectors(nil)
	if err != nil {
		return nil, fmt.Errorf("GibbsSampler: %w", err)
	}
	n := len(h)
	adj := make([][]coupling, n)
	for k, b := range data {
		u, v := rows[k], cols[k]
		adj[u] = append(adj[u], coupling{v, b})
		adj[v] = append(adj[v], coupling{u, b})
	}

	rng := rand.New(rand.NewSource(seed))
	beta := 1 / g.Temperature
	out := make([][]float64, reads)
	for r := 0; r < reads; r++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s := make([]float64, n)
		for i := range s {
			s[i] = float64(2*rng.Intn(2) - 1)
		}
		for sweep := 0; sweep < sweeps; sweep++ {
			for i := range s {
				f := h[i]
				for _, c := range adj[i] {
					f += c.bias * s[c.to]
				}
				// P(s_i = +1) = 1 / (1 + exp(2βf))
				if rng.Float64() < 1/(1+math.Exp(2*beta*f)) {
					s[i] = 1
				} else {
					s[i] = -1
				}
			}
		}
		out[r] = s
	}

	set, err := bqm.NewSampleSet(spin.Variables(), out, bqm.Spin)
	if err != nil {
		return nil, fmt.Errorf("GibbsSampler: %w", err)
	}
	set = set.As(m.Vartype())
	e, err := m.Energies(set)
	if err != nil {
		return nil, fmt.Errorf("GibbsSampler: %w", err)
	}
	if err := set.SetEnergies(e); err != nil {
		return nil, fmt.Errorf("GibbsSampler: %w", err)
	}
	return set, nil
}

type coupling struct {
	to   int
	bias float64
}
