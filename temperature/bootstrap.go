// SPDX-License-Identifier: MIT

package temperature

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// defaultSeed replaces a zero seed so that unseeded runs stay reproducible.
const defaultSeed int64 = 1

// Bootstrap resamples the rows of an excitation field and re-estimates the
// temperature of every replicate, using guess as the starting temperature.
// The number of replicates comes from WithBootstrap; method, bracket and
// seed options apply to every replicate.
//
// Complexity: O(B·R·N·I) for B replicates of R rows, N variables and I
// search iterations.
func Bootstrap(field *Field, guess float64, opts ...Option) ([]float64, error) {
	c := newConfig(opts)
	if err := c.validateBracket(); err != nil {
		return nil, fmt.Errorf("Bootstrap: %w", err)
	}
	if field == nil {
		return nil, fmt.Errorf("Bootstrap: %w", ErrMissingInput)
	}
	if field.Form != Excitation {
		return nil, fmt.Errorf("Bootstrap: field form %s: %w", field.Form, ErrFieldForm)
	}
	if c.bootstrap == 0 {
		return nil, nil
	}
	out, err := c.runBootstrap(field, guess)
	if err != nil {
		return nil, fmt.Errorf("Bootstrap: %w", err)
	}
	return out, nil
}

// runBootstrap draws every replicate's indices up front from one source,
// then solves the replicates concurrently.
func (c *config) runBootstrap(field *Field, guess float64) ([]float64, error) {
	start := time.Now()
	n := c.bootstrap
	size := n
	if c.resample == ResampleSamples {
		size = field.Len()
	}

	seed := c.seed
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))
	draws := make([][]int, n)
	for b := range draws {
		idx := make([]int, size)
		for k := range idx {
			idx[k] = rng.Intn(field.Len())
		}
		draws[b] = idx
	}

	workers := c.workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]float64, n)
	var g errgroup.Group
	g.SetLimit(workers)
	for b := range draws {
		g.Go(func() error {
			sub, err := field.Rows(draws[b])
			if err != nil {
				return fmt.Errorf("replicate %d: %w", b, err)
			}
			out[b] = c.estimatePoint(sub, guess).T
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if c.observer != nil {
		c.observer.ObserveBootstrap(n, time.Since(start))
	}
	return out, nil
}
