// Package markgrid averages grids of exam marks: one mean per student (row)
// and one mean per exam (column).
//
// Under the hood, everything is organized under two packages and a command:
//
//	matrix/       — row-major Dense storage, validators, RowMeans/ColMeans kernels
//	gradebook/    — Sheet, YAML loading, Report, totals check, output lines
//	cmd/markgrid/ — the CLI
//
// Quick example:
//
//	$ markgrid
//	Student Average: [25.0, 29.25, 27.5, 31.25, 30.75]
//	Exam Average: [28.0, 26.4, 31.6, 29.0]
//
//	go install github.com/katalvlaran/markgrid/cmd/markgrid@latest
package markgrid
