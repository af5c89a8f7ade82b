// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points over the statistics kernels.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only forward.

package matrix

import "fmt"

// matrixErrorf wraps err with the public operation tag ("RowMeans: ...").
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// RowMeans returns m where m[i] = (Σ_j X[i,j]) / cols.
// Errors: ErrNilMatrix, ErrInvalidDimensions.
// Complexity: O(rc).
func RowMeans(X Matrix) ([]float64, error) { return rowMeans(X) }

// ColMeans returns m where m[j] = Σ_i (X[i,j] / rows), accumulated row by row.
// Errors: ErrNilMatrix, ErrInvalidDimensions.
// Complexity: O(rc).
func ColMeans(X Matrix) ([]float64, error) { return colMeans(X) }

// ColMeansSummed returns m where m[j] = (Σ_i X[i,j]) / rows.
// Equal to ColMeans within floating-point tolerance, not necessarily bitwise.
// Complexity: O(rc).
func ColMeansSummed(X Matrix) ([]float64, error) { return colMeansSummed(X) }

// Total returns Σ_ij X[i,j] in row-major order.
// Complexity: O(rc).
func Total(X Matrix) (float64, error) { return total(X) }
