// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/markgrid/gradebook"
)

func newTestLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.New(&buf, "markgrid: ", 0), &buf
}

func TestRunDefaultSheet(t *testing.T) {
	logger, logs := newTestLogger()
	var out bytes.Buffer

	require.NoError(t, run(nil, &out, logger))
	assert.Equal(t,
		"Student Average: [25.0, 29.25, 27.5, 31.25, 30.75]\nExam Average: [28.0, 26.4, 31.6, 29.0]\n",
		out.String())
	assert.Empty(t, logs.String())
}

func TestRunVerbose(t *testing.T) {
	logger, logs := newTestLogger()
	var out bytes.Buffer

	require.NoError(t, run([]string{"-v"}, &out, logger))
	assert.Contains(t, logs.String(), "sheet: 5 students x 4 exams")
	assert.Contains(t, logs.String(), "grand total: 575")
}

func TestRunSheetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("marks:\n  - [1, 2]\n  - [3, 4]\n"), 0o644))
	logger, _ := newTestLogger()
	var out bytes.Buffer

	require.NoError(t, run([]string{"--sheet", path}, &out, logger))
	assert.Equal(t, "Student Average: [1.5, 3.5]\nExam Average: [2.0, 3.0]\n", out.String())
}

func TestRunCancellingSheetStillPrints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cancel.yaml")
	doc := "marks:\n  - [1e10, 0.1]\n  - [-1e10, 0.2]\n  - [0.3, -0.6]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	sheet, err := gradebook.LoadSheet(path)
	require.NoError(t, err)
	report, err := sheet.Average()
	require.NoError(t, err)
	require.ErrorIs(t, report.CheckTotals(0), gradebook.ErrInconsistent)

	for _, args := range [][]string{{"-s", path}, {"-s", path, "-v"}} {
		logger, logs := newTestLogger()
		var out bytes.Buffer

		require.NoError(t, run(args, &out, logger), "%v", args)
		assert.Equal(t, report.String(), out.String())
		if len(args) == 3 {
			assert.Contains(t, logs.String(), "totals check:")
		} else {
			assert.Empty(t, logs.String())
		}
	}
}

func TestRunRaggedSheetFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ragged.yaml")
	require.NoError(t, os.WriteFile(path, []byte("marks:\n  - [1, 2]\n  - [3]\n"), 0o644))
	logger, _ := newTestLogger()
	var out bytes.Buffer

	err := run([]string{"-s", path}, &out, logger)
	require.ErrorIs(t, err, gradebook.ErrShape)
	assert.Empty(t, out.String())
}

func TestRunRejectsArguments(t *testing.T) {
	logger, _ := newTestLogger()
	var out bytes.Buffer

	assert.Error(t, run([]string{"extra"}, &out, logger))
	assert.Error(t, run([]string{"--bogus"}, &out, logger))
	assert.Empty(t, out.String())
}
