// SPDX-License-Identifier: MIT

// Package rootfind locates roots of scalar functions f: ℝ → ℝ.
//
// Two searches are provided:
//
//   - Bisect: bracketed bisection on [a, b] with f(a)·f(b) ≤ 0. The first split
//     point may be supplied by the caller (x0) to reuse a good guess; every later
//     split is the midpoint of the current bracket. An endpoint of ±Inf is
//     replaced by a finite one found by geometric expansion from the other end.
//     Complexity: O(log2((b-a)/XTol)) evaluations of f.
//
//   - Newton: Newton–Raphson from x0 when the derivative is known, the secant
//     method otherwise. No bracket is used, so the iterate may wander; a zero
//     derivative or exhausting MaxIter is reported through Result.Converged and
//     Result.Flag rather than as an error.
//
// Neither search panics or logs. Invalid input is reported with the sentinel
// errors in errors.go.
package rootfind
