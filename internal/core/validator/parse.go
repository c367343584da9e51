// Package validator decides whether an operand may reach the calculator.
package validator

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/yndnr/numera-go/internal/core/domain"
)

// integerPattern matches the text accepted by the integer pipe.
var integerPattern = regexp.MustCompile(`^-?\d+$`)

// ParseNumber reads raw as a finite decimal number.
//
// Empty text, surrounding whitespace, non-numeric text, hexadecimal
// literals and non-finite literals ("NaN", "Inf") are rejected with a
// *domain.ParseError.
func ParseNumber(raw string) (float64, error) {
	if raw == "" || hasHexPrefix(raw) {
		return 0, domain.NewParseError(raw, nil)
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, domain.NewParseError(raw, err)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, domain.NewParseError(raw, nil)
	}
	return n, nil
}

// ParseInteger reads raw as an optionally signed run of decimal digits.
// The value is a float64, so digit runs wider than int64 are accepted and
// rounded to the nearest representable number. Runs too long to be finite
// are rejected.
func ParseInteger(raw string) (float64, error) {
	if !integerPattern.MatchString(raw) {
		return 0, domain.NewParseError(raw, nil)
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(n, 0) {
		return 0, domain.NewParseError(raw, err)
	}
	return n, nil
}

// hasHexPrefix reports whether raw starts with an optionally signed 0x,
// which strconv.ParseFloat would read as a hexadecimal float.
func hasHexPrefix(raw string) bool {
	s := strings.TrimLeft(raw, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// coerce is the lenient upstream conversion assumed by the inline strategy.
// Text that is not a number becomes NaN rather than an error.
func coerce(raw string) float64 {
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return n
}
