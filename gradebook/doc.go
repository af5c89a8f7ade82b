// SPDX-License-Identifier: MIT

// Package gradebook averages a grade sheet of students × exams.
//
// A Sheet holds one row of marks per student. Sheet.Average (or AverageGrid
// for a bare [][]T grid) returns a Report with the mean of every row
// (student averages) and of every column (exam averages):
//
//	r, err := gradebook.DefaultSheet().Average()
//	if err != nil {
//		// errors.Is(err, gradebook.ErrShape) for ragged rows,
//		// errors.Is(err, gradebook.ErrEmpty) for an empty sheet.
//	}
//	r.WriteTo(os.Stdout)
//
// prints
//
//	Student Average: [25.0, 29.25, 27.5, 31.25, 30.75]
//	Exam Average: [28.0, 26.4, 31.6, 29.0]
//
// Exam averages are accumulated as Σ mark/rows in row-major order rather
// than summed then divided; the two differ in the last bits for some inputs
// and the printed values follow the accumulated form.
//
// Sheets can be loaded from YAML with LoadSheet/ParseSheet.
package gradebook
