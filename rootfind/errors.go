// SPDX-License-Identifier: MIT

package rootfind

import "errors"

var (
	// ErrNilFunc is returned when the objective function is nil.
	ErrNilFunc = errors.New("rootfind: nil function")

	// ErrBadBracket is returned when a ≥ b or an endpoint is NaN.
	ErrBadBracket = errors.New("rootfind: invalid bracket")

	// ErrNoBracket is returned when f does not change sign over [a, b].
	ErrNoBracket = errors.New("rootfind: f(a) and f(b) must have opposite signs")
)
