// SPDX-License-Identifier: MIT

package gradebook

import (
	"math"
	"strconv"
	"strings"
)

// Series is an ordered sequence of averages.
type Series []float64

// String renders the series as "[v0, v1, ...]" using formatFloat.
func (s Series) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatFloat(v))
	}
	sb.WriteByte(']')

	return sb.String()
}

// formatFloat returns the shortest decimal string that round-trips v.
// Values with a decimal exponent in [-4, 16) use positional notation and
// always carry a fractional part ("25.0"); others use exponent notation
// ("1e+16", "1.5e-05"). Non-finite values render as inf, -inf and nan.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	e := strconv.FormatFloat(v, 'e', -1, 64)
	exp, err := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if err != nil || exp < -4 || exp >= 16 {
		return e
	}

	f := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(f, '.') {
		f += ".0"
	}

	return f
}
