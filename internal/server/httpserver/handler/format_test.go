package handler

import (
	"math"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{4, "4"},
		{-12, "-12"},
		{2.25, "2.25"},
		{math.Sqrt(2), "1.4142135623730951"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.Copysign(0, -1), "0"},
		{1e20, "100000000000000000000"},
		{9223372036854775807, "9223372036854776000"},
		{1.8446744073709552e19, "18446744073709552000"},
		{1e21, "1e+21"},
		{1e42, "1e+42"},
		{-1.5e300, "-1.5e+300"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{1.5e-10, "1.5e-10"},
	}
	for _, tt := range tests {
		if got := formatNumber(tt.in); got != tt.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLooseNumber(t *testing.T) {
	if got := looseNumber(" 4 "); got != 4 {
		t.Errorf("looseNumber(\" 4 \") = %v, want 4", got)
	}
	if got := looseNumber(""); got != 0 {
		t.Errorf("looseNumber(\"\") = %v, want 0", got)
	}
	if got := looseNumber("abc"); !math.IsNaN(got) {
		t.Errorf("looseNumber(\"abc\") = %v, want NaN", got)
	}
}
