// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the Dense and statistics tests.
//   • Keep all data finite and well-formed unless a test is about NaN/Inf.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/markgrid/matrix"
	"github.com/stretchr/testify/require"
)

// marks5x4 is the reference 5 students × 4 exams grid.
var marks5x4 = [][]int{
	{10, 20, 30, 40},
	{30, 34, 33, 20},
	{23, 43, 12, 32},
	{43, 12, 40, 30},
	{34, 23, 43, 23},
}

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the non-*Dense (At-based) fallback paths.
type hide struct{ matrix.Matrix }

// MustFromRows builds a *Dense from rows or fails the test.
func MustFromRows[T matrix.Number](t *testing.T, rows [][]T) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads X[i,j] or fails the test.
func MustAt(t *testing.T, X matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := X.At(i, j)
	require.NoError(t, err)

	return v
}

// sliceClose asserts |a[i]-b[i]| ≤ atol + rtol*|b[i]| for all i.
func sliceClose(t *testing.T, a, b []float64, rtol, atol float64) {
	t.Helper()
	if len(a) != len(b) {
		t.Fatalf("slice lengths: %d vs %d", len(a), len(b))
	}
	var diff, absb float64
	for i := range a {
		diff = a[i] - b[i]
		if diff < 0 {
			diff = -diff
		}
		absb = b[i]
		if absb < 0 {
			absb = -absb
		}
		if diff > (atol + rtol*absb) {
			t.Fatalf("sliceClose idx=%d: got=%g want=%g (rtol=%g atol=%g)", i, a[i], b[i], rtol, atol)
		}
	}
}
