// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with
// context) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) when the
// coordinates of the violation matter; callers still match with errors.Is.
//
// ERROR PRIORITY (order in which checks run):
// nil -> empty dimensions -> ragged shape -> NaN/Inf -> index.

var (
	// ErrBadShape is returned when input rows are not all the same length
	// (the matrix is not rectangular).
	ErrBadShape = errors.New("matrix: rows have differing lengths")

	// ErrInvalidDimensions indicates that the matrix has zero rows or zero
	// columns. Means over such a matrix would divide by zero.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value was encountered on ingestion.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
