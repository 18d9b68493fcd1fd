// SPDX-License-Identifier: MIT
// Package: thermo/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Constructors attach context as "<Method>: ...: %w".
//   • Runtime code never panics; option constructors (WithX) do.

package builder

import "errors"

// ErrTooFewVariables indicates a size parameter (n, rows, cols) below the
// constructor's minimum, or an empty label list.
var ErrTooFewVariables = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor or bias generator
// used without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor that could not complete, such
// as a nil constructor or a rejected label.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an option value that can only be checked at
// build time (e.g. an unknown vartype).
var ErrOptionViolation = errors.New("builder: invalid option value")
