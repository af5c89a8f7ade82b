// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the per-row / per-column mean kernels used by grade averaging,
//     plus the grand total used for consistency checks.
//
// Exposed API (see api.go):
//   - RowMeans(X)       -> means (len=r)   // Σ_j X[i,j] then / c
//   - ColMeans(X)       -> means (len=c)   // Σ_i (X[i,j] / r), incremental accumulation
//   - ColMeansSummed(X) -> means (len=c)   // (Σ_i X[i,j]) / r, reference only
//   - Total(X)          -> Σ_ij X[i,j]
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops. Floating-point addition is
//     not associative, so the traversal order is part of the contract.
//   - Dense fast-paths avoid At and operate on the row-major flat buffer.
//   - Empty matrices (0×N or N×0) are rejected with ErrInvalidDimensions:
//     a mean over zero elements is a division by zero.

package matrix

// Operation name constants for unified error wrapping.
const (
	opRowMeans       = "RowMeans"
	opColMeans       = "ColMeans"
	opColMeansSummed = "ColMeansSummed"
	opTotal          = "Total"
)

// rowMeans computes the arithmetic mean of every row.
// Implementation:
//   - Stage 1: Validate X (non-nil, non-empty).
//   - Stage 2: For each row, sum left→right and divide once by c.
//
// Returns:
//   - []float64: row means (len=r).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions from validation.
//   - Wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func rowMeans(X Matrix) ([]float64, error) {
	// Stage 1 (Validate).
	if err := ValidateNonEmpty(X); err != nil {
		return nil, matrixErrorf(opRowMeans, err)
	}

	r, c := X.Rows(), X.Cols()
	means := make([]float64, r)
	fc := float64(c)

	// Stage 2 (Execute).
	var i, j int
	var s, v float64
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			s = 0.0
			base := i * c
			for j = 0; j < c; j++ {
				s += d.data[base+j]
			}
			means[i] = s / fc
		}

		return means, nil
	}

	var err error
	for i = 0; i < r; i++ {
		s = 0.0
		for j = 0; j < c; j++ {
			v, err = X.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opRowMeans, err)
			}
			s += v
		}
		means[i] = s / fc
	}

	return means, nil
}

// colMeans computes column means by incremental accumulation: every value
// is divided by r before it is added, i.e. means[j] = Σ_i (X[i,j] / r).
// Implementation:
//   - Stage 1: Validate X (non-nil, non-empty).
//   - Stage 2: Start from zeros; walk rows top→bottom, columns left→right,
//     adding X[i,j]/r into means[j].
//
// Notes:
//   - Mathematically equal to ColMeansSummed but not bitwise: the rounding of
//     each quotient is kept. Output that must match a reference run bit for
//     bit uses this kernel.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func colMeans(X Matrix) ([]float64, error) {
	// Stage 1 (Validate).
	if err := ValidateNonEmpty(X); err != nil {
		return nil, matrixErrorf(opColMeans, err)
	}

	r, c := X.Rows(), X.Cols()
	means := make([]float64, c) // zeroed accumulators
	fr := float64(r)

	// Stage 2 (Execute): row-major accumulation order.
	var i, j int
	var v float64
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				means[j] += d.data[base+j] / fr
			}
		}

		return means, nil
	}

	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err = X.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opColMeans, err)
			}
			means[j] += v / fr
		}
	}

	return means, nil
}

// colMeansSummed computes column means as (Σ_i X[i,j]) / r.
// Used to cross-check colMeans within tolerance.
// Complexity: Time O(r*c), Space O(c).
func colMeansSummed(X Matrix) ([]float64, error) {
	if err := ValidateNonEmpty(X); err != nil {
		return nil, matrixErrorf(opColMeansSummed, err)
	}

	r, c := X.Rows(), X.Cols()
	sums := make([]float64, c)

	var i, j int
	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err = X.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opColMeansSummed, err)
			}
			sums[j] += v
		}
	}

	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		sums[j] *= invR
	}

	return sums, nil
}

// total returns the sum of every element in row-major order.
// Complexity: Time O(r*c), Space O(1).
func total(X Matrix) (float64, error) {
	if err := ValidateNonEmpty(X); err != nil {
		return 0, matrixErrorf(opTotal, err)
	}

	if d, ok := X.(*Dense); ok {
		var s float64
		for _, v := range d.data {
			s += v
		}

		return s, nil
	}

	r, c := X.Rows(), X.Cols()
	var s, v float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err = X.At(i, j)
			if err != nil {
				return 0, matrixErrorf(opTotal, err)
			}
			s += v
		}
	}

	return s, nil
}
