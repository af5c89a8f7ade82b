// SPDX-License-Identifier: MIT

// Command markgrid prints the student and exam averages of a grade sheet.
//
// Without flags it averages the built-in 5×4 sheet. --sheet loads a YAML
// sheet instead; --verbose logs the sheet shape and the grand-total check
// to stderr. A failed totals check is reported, never fatal.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/markgrid/gradebook"
)

func main() {
	logger := log.New(os.Stderr, "markgrid: ", 0)
	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		logger.Fatalf("%v", err)
	}
}

func run(args []string, stdout io.Writer, logger *log.Logger) error {
	fs := pflag.NewFlagSet("markgrid", pflag.ContinueOnError)
	fs.SetOutput(logger.Writer())
	sheetPath := fs.StringP("sheet", "s", "", "YAML grade sheet to average instead of the built-in one")
	verbose := fs.BoolP("verbose", "v", false, "log sheet shape and totals check to stderr")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	sheet := gradebook.DefaultSheet()
	if *sheetPath != "" {
		var err error
		if sheet, err = gradebook.LoadSheet(*sheetPath); err != nil {
			return fmt.Errorf("load sheet: %w", err)
		}
	}

	report, err := sheet.Average()
	if err != nil {
		return fmt.Errorf("average sheet: %w", err)
	}
	if *verbose {
		logger.Printf("sheet: %d students x %d exams", report.Rows, report.Cols)
		a, b := report.GrandTotals()
		logger.Printf("grand total: %g from students, %g from exams", a, b)
		// Cancelling or huge marks can push the two totals apart by rounding
		// alone; the averages themselves are still printed.
		if err := report.CheckTotals(gradebook.DefaultTolerance); err != nil {
			logger.Printf("totals check: %v", err)
		}
	}

	_, err = report.WriteTo(stdout)
	return err
}
