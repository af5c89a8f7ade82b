// SPDX-License-Identifier: MIT

package gradebook

import (
	"errors"

	"github.com/katalvlaran/markgrid/matrix"
)

var (
	// ErrShape is returned when the marks grid is ragged (rows of differing
	// length). It is the matrix sentinel, so errors.Is matches either name.
	ErrShape = matrix.ErrBadShape

	// ErrEmpty is returned for a sheet with no students or no exams; an
	// average over zero marks would divide by zero.
	ErrEmpty = matrix.ErrInvalidDimensions

	// ErrLabels is returned when student or exam labels do not match the
	// shape of the marks grid.
	ErrLabels = errors.New("gradebook: label count does not match marks")

	// ErrInconsistent is returned by CheckTotals when the row and column
	// averages disagree on the grand total.
	ErrInconsistent = errors.New("gradebook: student and exam averages disagree on the grand total")
)
