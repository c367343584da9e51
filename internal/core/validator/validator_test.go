package validator

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/yndnr/numera-go/internal/core/domain"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"0", 0, false},
		{"16", 16, false},
		{"-3", -3, false},
		{"2.25", 2.25, false},
		{"1e3", 1000, false},
		{"", 0, true},
		{"abc", 0, true},
		{" 4", 0, true},
		{"4 ", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"-Infinity", 0, true},
		{"1e400", 0, true},
		{"0x10p0", 0, true},
		{"0X1P4", 0, true},
		{"-0x10p0", 0, true},
		{"0.5", 0.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseNumber(tt.raw)
			if tt.wantErr {
				var pe *domain.ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("ParseNumber(%q) error = %v, want *domain.ParseError", tt.raw, err)
				}
				if pe.Input != tt.raw {
					t.Errorf("ParseError.Input = %q, want %q", pe.Input, tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseNumber(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseNumber(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseInteger(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"0", 0, false},
		{"42", 42, false},
		{"9223372036854775807", 9223372036854775807, false},
		{"-7", -7, false},
		{"007", 7, false},
		{"1.5", 0, true},
		{"+3", 0, true},
		{"", 0, true},
		{"12a", 0, true},
		{"99999999999999999999", 1e20, false},
		{"0x10", 0, true},
		{"1" + strings.Repeat("0", 400), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseInteger(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrNumericStringExpected) {
					t.Fatalf("ParseInteger(%q) error = %v, want numeric string expected", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInteger(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseInteger(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNonNegative(t *testing.T) {
	if err := NonNegative(0); err != nil {
		t.Errorf("NonNegative(0) = %v, want nil", err)
	}
	if err := NonNegative(5); err != nil {
		t.Errorf("NonNegative(5) = %v, want nil", err)
	}
	err := NonNegative(-1)
	if !errors.Is(err, domain.ErrNegativeNumber) {
		t.Fatalf("NonNegative(-1) = %v, want ErrNegativeNumber", err)
	}
	if de := domain.AsDomainError(err); de.Message != "Negative number" || de.Kind != domain.KindInvalidArgument {
		t.Errorf("NonNegative(-1) = %+v", de)
	}
}

// TestValidator_SharedContract runs the same table against both strategies.
// Number inputs behave identically; raw inputs differ only where the inline
// strategy deliberately skips parsing.
func TestValidator_SharedContract(t *testing.T) {
	tests := []struct {
		name     string
		in       Input
		want     float64
		inline   error
		boundary error
	}{
		{name: "zero", in: Number(0), want: 0},
		{name: "positive", in: Number(5), want: 5},
		{name: "fraction", in: Number(2.25), want: 2.25},
		{name: "negative", in: Number(-1), inline: domain.ErrNegativeNumber, boundary: domain.ErrNegativeNumber},
		{name: "raw zero", in: Raw("0"), want: 0},
		{name: "raw sixteen", in: Raw("16"), want: 16},
		{name: "raw negative", in: Raw("-3"), inline: domain.ErrNegativeNumber, boundary: domain.ErrNegativeNumber},
		{name: "raw negative one", in: Raw("-1"), inline: domain.ErrNegativeNumber, boundary: domain.ErrNegativeNumber},
		{name: "raw text", in: Raw("abc"), boundary: domain.ErrNumericStringExpected},
		{name: "raw empty", in: Raw(""), boundary: domain.ErrNumericStringExpected},
	}

	for _, strategy := range []Strategy{StrategyInline, StrategyBoundary} {
		v := New(strategy, NonNegative)
		for _, tt := range tests {
			t.Run(strategy.String()+"/"+tt.name, func(t *testing.T) {
				wantErr := tt.inline
				if strategy == StrategyBoundary {
					wantErr = tt.boundary
				}

				got, err := v.Validate(tt.in)
				if wantErr != nil {
					if !errors.Is(err, wantErr) {
						t.Fatalf("Validate(%s) error = %v, want %v", tt.in, err, wantErr)
					}
					return
				}
				if err != nil {
					// Inline strategy lets non-numeric text through as NaN.
					t.Fatalf("Validate(%s) unexpected error: %v", tt.in, err)
				}
				if strategy == StrategyInline && tt.boundary != nil {
					if !math.IsNaN(got) {
						t.Errorf("Validate(%s) = %v, want NaN", tt.in, got)
					}
					return
				}
				if got != tt.want {
					t.Errorf("Validate(%s) = %v, want %v", tt.in, got, tt.want)
				}
			})
		}
	}
}

func TestValidator_BoundaryParsesBeforeRules(t *testing.T) {
	called := false
	spy := func(float64) error {
		called = true
		return nil
	}

	v := New(StrategyBoundary, spy)
	if _, err := v.Validate(Raw("abc")); err == nil {
		t.Fatal("expected parse failure")
	}
	if called {
		t.Error("rules must not run when parsing fails")
	}
}

func TestValidator_BoundaryRejectsNonFiniteNumber(t *testing.T) {
	v := New(StrategyBoundary, NonNegative)
	for _, n := range []float64{math.NaN(), math.Inf(1)} {
		if _, err := v.Validate(Number(n)); !errors.Is(err, domain.ErrNumericStringExpected) {
			t.Errorf("Validate(%v) error = %v, want numeric string expected", n, err)
		}
	}
}

func TestValidator_RulesRunInOrder(t *testing.T) {
	first := errors.New("first")
	v := New(StrategyInline,
		func(float64) error { return first },
		func(float64) error { t.Error("second rule should not run"); return nil },
	)
	if _, err := v.Validate(Number(1)); err != first {
		t.Errorf("Validate() error = %v, want %v", err, first)
	}
}

func TestStrategy_String(t *testing.T) {
	if got := StrategyInline.String(); got != "inline" {
		t.Errorf("String() = %q, want inline", got)
	}
	if got := StrategyBoundary.String(); got != "boundary" {
		t.Errorf("String() = %q, want boundary", got)
	}
	if got := Strategy(9).String(); got != "strategy(9)" {
		t.Errorf("String() = %q", got)
	}
}
