// SPDX-License-Identifier: MIT

package gradebook

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	// Runtime addition; the constant expression 0.1 + 0.2 would be exactly 0.3.
	a, b := 0.1, 0.2

	cases := []struct {
		in   float64
		want string
	}{
		{25, "25.0"},
		{29.25, "29.25"},
		{26.4, "26.4"},
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{-3.5, "-3.5"},
		{a + b, "0.30000000000000004"},
		{1e-4, "0.0001"},
		{1.5e-5, "1.5e-05"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{1234567.0, "1234567.0"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatFloat(tc.in), "formatFloat(%v)", tc.in)
	}
}

func TestSeriesString(t *testing.T) {
	assert.Equal(t, "[]", Series{}.String())
	assert.Equal(t, "[1.0]", Series{1}.String())
	assert.Equal(t, "[28.0, 26.4, 31.6, 29.0]", Series{28, 26.4, 31.6, 29}.String())
}
