// SPDX-License-Identifier: MIT

// Package matrix: domain types used by ingestion and the statistics kernels.
// This file contains ONLY types (the Number constraint and the Matrix
// interface). Errors live in errors.go, validation in validators.go.
package matrix

import "golang.org/x/exp/constraints"

// Number is any built-in integer or floating-point type accepted on ingestion.
// Every value is converted to float64 exactly once, in NewDenseFromRows.
type Number interface {
	constraints.Integer | constraints.Float
}

// Matrix represents a read-only two-dimensional array of float64 values.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)
}
