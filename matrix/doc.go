// SPDX-License-Identifier: MIT

// Package matrix offers a small row-major Dense matrix and the statistics
// kernels built on it.
//
// The matrix package provides:
//
//   - Dense, a flat row-major float64 buffer with a bounds-checked At;
//     immutable once built.
//   - NewDenseFromRows, generic ingestion of rectangular [][]T grids of any
//     integer or float type, rejecting ragged (ErrBadShape) and empty
//     (ErrInvalidDimensions) input.
//   - RowMeans and ColMeans with a fixed i→j traversal, so results are
//     reproducible bit for bit. ColMeans accumulates X[i,j]/rows per value;
//     ColMeansSummed divides once and is kept for cross-checks.
//   - Total, the grand sum used by consistency checks.
//
// All errors are sentinels from errors.go; match them with errors.Is.
//
// See example_test.go for usage patterns.
package matrix
