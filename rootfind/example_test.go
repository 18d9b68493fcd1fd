// SPDX-License-Identifier: MIT

package rootfind_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/thermo/rootfind"
)

func ExampleBisect() {
	f := func(x float64) float64 { return x*x - 2 }
	res, _ := rootfind.Bisect(f, 0, 2, math.NaN(), rootfind.DefaultOptions())
	fmt.Printf("%.10f %v\n", res.Root, res.Converged)
	// Output: 1.4142135624 true
}

func ExampleNewton() {
	f := func(x float64) float64 { return math.Cos(x) - x }
	df := func(x float64) float64 { return -math.Sin(x) - 1 }
	res, _ := rootfind.Newton(f, df, 1, rootfind.Options{})
	fmt.Printf("%.8f\n", res.Root)
	// Output: 0.73908513
}
