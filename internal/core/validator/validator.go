// Package validator decides whether an operand may reach the calculator.
package validator

import (
	"fmt"
	"math"

	"github.com/yndnr/numera-go/internal/core/domain"
)

// Strategy selects how a Validator reports a rejected operand.
type Strategy int

const (
	// StrategyInline assumes the operand was already coerced to a number and
	// only applies the domain rules. The caller turns a returned DomainError
	// into a rejection itself.
	StrategyInline Strategy = iota

	// StrategyBoundary parses raw text first and then applies the domain
	// rules, so nothing invalid ever reaches computation code.
	StrategyBoundary
)

// String returns the strategy name used in logs and metric labels.
func (s Strategy) String() string {
	switch s {
	case StrategyInline:
		return "inline"
	case StrategyBoundary:
		return "boundary"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Rule is a domain precondition on an already parsed operand.
type Rule func(n float64) error

// NonNegative rejects operands below zero. Zero itself is accepted.
func NonNegative(n float64) error {
	if n < 0 {
		return domain.ErrNegativeNumber
	}
	return nil
}

// Input is an operand of unknown origin: either raw request text or a number
// produced by an earlier conversion step.
type Input struct {
	raw     string
	number  float64
	coerced bool
}

// Raw wraps request text that has not been converted yet.
func Raw(s string) Input {
	return Input{raw: s}
}

// Number wraps an operand that was already converted upstream.
func Number(n float64) Input {
	return Input{number: n, coerced: true}
}

// String returns the operand as it was received.
func (in Input) String() string {
	if in.coerced {
		return fmt.Sprint(in.number)
	}
	return in.raw
}

// Validator checks operands against a set of rules using one Strategy.
// A Validator holds no mutable state and is safe for concurrent use.
type Validator struct {
	strategy Strategy
	rules    []Rule
}

// New creates a Validator applying rules in order under the given strategy.
func New(strategy Strategy, rules ...Rule) *Validator {
	return &Validator{
		strategy: strategy,
		rules:    rules,
	}
}

// Strategy returns the strategy this Validator was built with.
func (v *Validator) Strategy() Strategy {
	return v.strategy
}

// Validate returns the operand as a number once it satisfies every rule.
//
// Under StrategyBoundary a raw operand is parsed first and a failure is
// returned as *domain.ParseError; rule failures come back as the rule's
// *domain.DomainError. Under StrategyInline only the rules run.
func (v *Validator) Validate(in Input) (float64, error) {
	var n float64
	switch v.strategy {
	case StrategyBoundary:
		if in.coerced {
			if math.IsNaN(in.number) || math.IsInf(in.number, 0) {
				return 0, domain.NewParseError(in.String(), nil)
			}
			n = in.number
			break
		}
		parsed, err := ParseNumber(in.raw)
		if err != nil {
			return 0, err
		}
		n = parsed
	default:
		// Non-numeric text coerces to NaN and passes the rules.
		// HTTP routes put the integer pipe in front of this strategy.
		if in.coerced {
			n = in.number
		} else {
			n = coerce(in.raw)
		}
	}

	for _, rule := range v.rules {
		if err := rule(n); err != nil {
			return 0, err
		}
	}
	return n, nil
}
