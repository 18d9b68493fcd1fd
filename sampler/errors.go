// SPDX-License-Identifier: MIT

package sampler

import "errors"

var (
	// ErrTooLarge indicates a model too big for exhaustive enumeration.
	ErrTooLarge = errors.New("sampler: model too large for exact enumeration")

	// ErrParamType indicates a parameter of the wrong dynamic type.
	ErrParamType = errors.New("sampler: parameter has the wrong type")

	// ErrParamValue indicates a parameter outside its admissible range.
	ErrParamValue = errors.New("sampler: parameter out of range")

	// ErrUnknownNode indicates a model variable that the sampler does not expose.
	ErrUnknownNode = errors.New("sampler: variable is not a sampler node")

	// ErrNilChild indicates a composite without a child sampler.
	ErrNilChild = errors.New("sampler: nil child sampler")

	// ErrBadTemperature indicates a non-positive sampling temperature.
	ErrBadTemperature = errors.New("sampler: temperature must be positive")
)
