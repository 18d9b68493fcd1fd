// SPDX-License-Identifier: MIT
// Package: thermo/builder
//
// validators.go - parameter checks shared by constructors. Each returns a
// sentinel-wrapped error prefixed with the constructor name.

package builder

import "fmt"

// Constructor names used as error prefixes.
const (
	MethodUncoupled    = "Uncoupled"
	MethodFromLabels   = "FromLabels"
	MethodChain        = "Chain"
	MethodCycle        = "Cycle"
	MethodGrid         = "Grid"
	MethodComplete     = "Complete"
	MethodRandomSparse = "RandomSparse"
)

// Minimum sizes.
const (
	MinUncoupledVars = 1
	MinChainVars     = 2
	MinCycleVars     = 3
	MinGridDim       = 1
	MinCompleteVars  = 1
	MinSparseVars    = 1
)

// builderErrorf formats "<method>: <msg>: <sentinel>" keeping sentinel for errors.Is.
func builderErrorf(method, msg string, sentinel error) error {
	return fmt.Errorf("%s: %s: %w", method, msg, sentinel)
}

// validateMin requires got ≥ min.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, fmt.Sprintf("n=%d, must be ≥ %d", got, min), ErrTooFewVariables)
	}
	return nil
}

// validateProbability requires p ∈ [0,1].
func validateProbability(method string, p float64) error {
	if !(p >= 0 && p <= 1) {
		return builderErrorf(method, fmt.Sprintf("p=%g not in [0,1]", p), ErrInvalidProbability)
	}
	return nil
}
