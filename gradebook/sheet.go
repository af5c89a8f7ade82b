// SPDX-License-Identifier: MIT

package gradebook

import (
	"fmt"

	"github.com/katalvlaran/markgrid/matrix"
)

// Sheet is a grade sheet: one row of marks per student, one column per exam.
// Students and Exams are optional labels; when set, their lengths must match
// the number of rows and columns of Marks.
type Sheet struct {
	Students []string    `yaml:"students,omitempty"`
	Exams    []string    `yaml:"exams,omitempty"`
	Marks    [][]float64 `yaml:"marks"`
}

// DefaultSheet returns the built-in 5 students × 4 exams sheet.
// Each call returns a fresh copy.
func DefaultSheet() *Sheet {
	return &Sheet{
		Marks: [][]float64{
			{10, 20, 30, 40},
			{30, 34, 33, 20},
			{23, 43, 12, 32},
			{43, 12, 40, 30},
			{34, 23, 43, 23},
		},
	}
}

// Dims returns the number of students and exams. Cols is taken from the
// first row, so it is only meaningful for a validated sheet.
func (s *Sheet) Dims() (rows, cols int) {
	if s == nil || len(s.Marks) == 0 {
		return 0, 0
	}

	return len(s.Marks), len(s.Marks[0])
}

// Validate checks that the marks grid is rectangular and non-empty and that
// any labels match its shape.
func (s *Sheet) Validate() error {
	if s == nil {
		return fmt.Errorf("gradebook: nil sheet: %w", ErrEmpty)
	}
	if err := matrix.ValidateRectangular(s.Marks); err != nil {
		return fmt.Errorf("gradebook: marks: %w", err)
	}
	r, c := s.Dims()
	if len(s.Students) != 0 && len(s.Students) != r {
		return fmt.Errorf("gradebook: %d students for %d rows: %w", len(s.Students), r, ErrLabels)
	}
	if len(s.Exams) != 0 && len(s.Exams) != c {
		return fmt.Errorf("gradebook: %d exams for %d columns: %w", len(s.Exams), c, ErrLabels)
	}

	return nil
}

// Average validates the sheet and computes its student and exam averages.
func (s *Sheet) Average() (*Report, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return AverageGrid(s.Marks)
}
