// SPDX-License-Identifier: MIT

package temperature

import "errors"

var (
	// ErrBadBracket indicates a temperature bracket violating 0 ≤ lo < hi.
	ErrBadBracket = errors.New("temperature: bracket must satisfy 0 <= lo < hi")

	// ErrMissingInput indicates that neither a field nor a model with samples was given.
	ErrMissingInput = errors.New("temperature: need an effective field or a model and samples")

	// ErrFieldForm indicates a field in the wrong form for the requested operation.
	ErrFieldForm = errors.New("temperature: effective field has the wrong form")

	// ErrFieldShape indicates a field whose values and labels disagree, or an empty field.
	ErrFieldShape = errors.New("temperature: malformed effective field")

	// ErrUnknownMethod indicates an unrecognised search method name.
	ErrUnknownMethod = errors.New("temperature: unknown method")

	// ErrHRange indicates a linear-bias range outside the sampler's programmable range.
	ErrHRange = errors.New("temperature: h range exceeds programmable range")

	// ErrIncompatibleParams indicates sampler parameters that contradict the estimator's needs.
	ErrIncompatibleParams = errors.New("temperature: incompatible sampler parameters")

	// ErrNilSampler indicates a fast estimate requested without a sampler.
	ErrNilSampler = errors.New("temperature: sampler is nil")
)
