// SPDX-License-Identifier: MIT

package bqm

import "errors"

// Sentinel errors. Callers match them with errors.Is; implementations attach
// context with fmt.Errorf("Op: ...: %w", ErrX).
var (
	// ErrUnknownVartype is returned when a vartype string is neither SPIN nor BINARY.
	ErrUnknownVartype = errors.New("bqm: unknown vartype")

	// ErrEmptyLabel indicates an empty variable label.
	ErrEmptyLabel = errors.New("bqm: variable label is empty")

	// ErrSelfLoop indicates a quadratic term with u == v.
	ErrSelfLoop = errors.New("bqm: quadratic term on a single variable")

	// ErrNaNInf indicates a NaN or ±Inf coefficient or sample value.
	ErrNaNInf = errors.New("bqm: NaN or Inf encountered")

	// ErrUnknownVariable indicates a label that is not declared in the model or sample set.
	ErrUnknownVariable = errors.New("bqm: unknown variable")

	// ErrDuplicateLabel indicates a repeated label in a column order.
	ErrDuplicateLabel = errors.New("bqm: duplicate variable label")

	// ErrVariableMismatch indicates that two label sets (model vs samples,
	// requested order vs declared variables) are not equal.
	ErrVariableMismatch = errors.New("bqm: variable sets do not match")

	// ErrEmptyModel indicates an operation that needs at least one variable.
	ErrEmptyModel = errors.New("bqm: model has no variables")

	// ErrEmptySamples indicates a sample set without rows or columns.
	ErrEmptySamples = errors.New("bqm: sample set is empty")

	// ErrRaggedSamples indicates rows of different lengths.
	ErrRaggedSamples = errors.New("bqm: sample rows have different lengths")

	// ErrBadValue indicates a sample value outside the vartype domain.
	ErrBadValue = errors.New("bqm: sample value outside vartype domain")

	// ErrOutOfRange indicates a row index outside [0, Len()).
	ErrOutOfRange = errors.New("bqm: row index out of range")
)
