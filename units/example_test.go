// SPDX-License-Identifier: MIT

package units_test

import (
	"fmt"

	"github.com/katalvlaran/thermo/units"
)

func ExampleFreezeoutEffectiveTemperature() {
	T, _ := units.FreezeoutEffectiveTemperature(3.91, units.GHz, 15.4, units.MilliKelvin)
	fmt.Printf("%.3f\n", T)
	// Output: 0.164
}
