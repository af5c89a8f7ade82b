// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Dense is immutable once built; only NewDenseFromRows writes the buffer.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Ingest rectangular [][]T grids of any integer or float type in one pass.
//
// Complexity quicksheet:
//   - NewDenseFromRows: O(r*c); At: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"               // method tag used in error wrappers
	ctxIngest = "NewDenseFromRows" // ctor tag for ingestion
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error; the sentinel survives for errors.Is.
//
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDenseFromRows builds a Dense from a rectangular grid of numbers.
//
// Implementation:
//   - Stage 1: ValidateRectangular (empty → ErrInvalidDimensions, ragged → ErrBadShape).
//   - Stage 2: copy every value in row-major order, converting to float64.
//   - Stage 3: reject NaN/±Inf (float inputs only) with its coordinates.
//
// Behavior highlights:
//   - The input slice is never retained; later mutation of rows does not
//     affect the returned matrix.
//   - Integer inputs of magnitude ≤ 2^53 convert exactly.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape (wrapped with the offending row), ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows[T Number](rows [][]T) (*Dense, error) {
	// Stage 1 (Validate): shape before any allocation.
	if err := ValidateRectangular(rows); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxIngest, err)
	}

	// Stage 2 (Prepare): one flat allocation.
	r, c := len(rows), len(rows[0])
	data := make([]float64, r*c)

	// Stage 3 (Execute): deterministic i→j copy with the finite-value guard.
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			v = float64(rows[i][j])
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf(ctxIngest, i, j, ErrNaNInf)
			}
			data[base+j] = v
		}
	}

	return &Dense{r: r, c: c, data: data}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange
// wrapped with the calling method's tag.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// String implements fmt.Stringer for debugging: one bracketed line per row.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
