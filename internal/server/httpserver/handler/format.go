// Package handler provides HTTP request handlers for Numera.
package handler

import (
	"math"
	"strconv"
	"strings"
)

// formatNumber renders a float the way the greeting strings expect:
// shortest round-trip digits, exponent form below 1e-6 and from 1e21 on,
// "NaN" and "Infinity" for non-finite values, and "0" for negative zero.
func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		return "0"
	}

	if abs := math.Abs(n); abs < 1e-6 || abs >= 1e21 {
		s := strconv.FormatFloat(n, 'e', -1, 64)
		// Single-digit exponents are written without padding: e-7, not e-07.
		if i := strings.IndexByte(s, 'e'); i >= 0 && len(s)-i == 4 && s[i+2] == '0' {
			s = s[:i+2] + s[i+3:]
		}
		return s
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// looseNumber converts path text without validation: surrounding space is
// ignored, empty text is zero and anything else unreadable is NaN.
func looseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return n
}
