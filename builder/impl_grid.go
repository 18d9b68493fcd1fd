// SPDX-License-Identifier: MIT
// Package: thermo/builder
//
// impl_grid.go - Grid(rows, cols): a 2D lattice with 4-neighbour couplings.
//
// Labels use the fixed scheme "r,c" (row-major) instead of cfg.idFn so that
// coordinates stay readable. For each cell the right coupling is emitted
// before the bottom one.

package builder

import (
	"fmt"

	"github.com/katalvlaran/thermo/bqm"
)

const gridIDFmt = "%d,%d"

// Grid builds a rows×cols lattice (each ≥ 1).
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(m *bqm.Model, cfg modelConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return builderErrorf(MethodGrid, fmt.Sprintf("rows=%d, cols=%d", rows, cols), ErrTooFewVariables)
		}
		if err := cfg.requireRand(MethodGrid); err != nil {
			return err
		}
		id := func(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := declare(m, cfg, id(r, c)); err != nil {
					return fmt.Errorf("%s: %w", MethodGrid, err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := couple(m, cfg, id(r, c), id(r, c+1)); err != nil {
						return fmt.Errorf("%s: %w", MethodGrid, err)
					}
				}
				if r+1 < rows {
					if err := couple(m, cfg, id(r, c), id(r+1, c)); err != nil {
						return fmt.Errorf("%s: %w", MethodGrid, err)
					}
				}
			}
		}
		return nil
	}
}
