// SPDX-License-Identifier: MIT

package gradebook

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/markgrid/matrix"
)

// DefaultTolerance is the absolute and relative tolerance used by CheckTotals.
const DefaultTolerance = 1e-9

const (
	studentLabel = "Student Average"
	examLabel    = "Exam Average"
)

// Report holds the averages of one grade sheet.
type Report struct {
	// Students has one mean per row (student), len == Rows.
	Students Series
	// Exams has one mean per column (exam), len == Cols.
	Exams Series

	Rows, Cols int
}

// AverageGrid computes the per-student and per-exam averages of a
// rectangular marks grid.
//
// Student averages sum each row then divide by the number of exams. Exam
// averages start at zero and add mark/rows for every mark in row-major
// order, so results are reproducible bit for bit.
//
// A ragged grid fails with ErrShape and an empty one with ErrEmpty; no
// partial report is returned.
func AverageGrid[T matrix.Number](marks [][]T) (*Report, error) {
	X, err := matrix.NewDenseFromRows(marks)
	if err != nil {
		return nil, fmt.Errorf("gradebook: %w", err)
	}

	students, err := matrix.RowMeans(X)
	if err != nil {
		return nil, fmt.Errorf("gradebook: student averages: %w", err)
	}
	exams, err := matrix.ColMeans(X)
	if err != nil {
		return nil, fmt.Errorf("gradebook: exam averages: %w", err)
	}

	return &Report{
		Students: students,
		Exams:    exams,
		Rows:     X.Rows(),
		Cols:     X.Cols(),
	}, nil
}

// GrandTotals returns the grand total of all marks as recovered from the
// student averages and from the exam averages.
func (r *Report) GrandTotals() (fromStudents, fromExams float64) {
	return floats.Sum(r.Students) * float64(r.Cols), floats.Sum(r.Exams) * float64(r.Rows)
}

// CheckTotals verifies sum(Students)*Cols ≈ sum(Exams)*Rows within tol
// (absolute or relative). A non-positive tol selects DefaultTolerance.
func (r *Report) CheckTotals(tol float64) error {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	if len(r.Students) != r.Rows || len(r.Exams) != r.Cols {
		return fmt.Errorf("gradebook: report has %d/%d averages for a %dx%d sheet: %w",
			len(r.Students), len(r.Exams), r.Rows, r.Cols, ErrShape)
	}
	a, b := r.GrandTotals()
	if !scalar.EqualWithinAbsOrRel(a, b, tol, tol) {
		return fmt.Errorf("gradebook: %s vs %s: %w", formatFloat(a), formatFloat(b), ErrInconsistent)
	}

	return nil
}

// WriteTo writes the two labelled lines:
//
//	Student Average: [v0, v1, ...]
//	Exam Average: [w0, w1, ...]
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())

	return int64(n), err
}

// String returns the same text WriteTo writes.
func (r *Report) String() string {
	return fmt.Sprintf("%s: %s\n%s: %s\n", studentLabel, r.Students, examLabel, r.Exams)
}
