// SPDX-License-Identifier: MIT

package bqm

import (
	"fmt"
	"strings"
)

// Vartype is the value domain of every variable in a model or sample set.
type Vartype int

const (
	// Spin variables take values in {-1, +1}.
	Spin Vartype = iota

	// Binary variables take values in {0, 1}.
	Binary
)

// String returns the canonical upper-case name ("SPIN" or "BINARY").
func (vt Vartype) String() string {
	switch vt {
	case Spin:
		return "SPIN"
	case Binary:
		return "BINARY"
	default:
		return fmt.Sprintf("Vartype(%d)", int(vt))
	}
}

// Values returns the two admissible values, low first.
func (vt Vartype) Values() [2]float64 {
	if vt == Binary {
		return [2]float64{0, 1}
	}
	return [2]float64{-1, 1}
}

// Valid reports whether x belongs to the domain of vt.
func (vt Vartype) Valid(x float64) bool {
	vals := vt.Values()
	return x == vals[0] || x == vals[1]
}

// ParseVartype parses "SPIN"/"BINARY" (case-insensitive; "ising" and "qubo"
// are accepted as aliases).
func ParseVartype(s string) (Vartype, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SPIN", "ISING", "":
		return Spin, nil
	case "BINARY", "QUBO":
		return Binary, nil
	default:
		return 0, fmt.Errorf("ParseVartype(%q): %w", s, ErrUnknownVartype)
	}
}

// Interaction is one stored quadratic coefficient between U and V.
type Interaction struct {
	U, V string
	Bias float64
}

// Neighbor is an adjacent variable together with the coupling to it.
type Neighbor struct {
	Label string
	Bias  float64
}
