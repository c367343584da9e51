// Package service provides domain services for Numera.
package service

import (
	"github.com/yndnr/numera-go/internal/core/calculator"
	"github.com/yndnr/numera-go/internal/core/domain"
	"github.com/yndnr/numera-go/internal/core/validator"
)

// Operation names reported to the Observer.
const (
	OpSquare     = "square"
	OpCube       = "cube"
	OpMultiply   = "multiply"
	OpSquareRoot = "square_root"
)

// Observer receives computation and rejection events.
// Implementations must be safe for concurrent use.
type Observer interface {
	// ObserveComputation records a completed computation.
	ObserveComputation(op string)

	// ObserveRejection records an operand rejected by a validation strategy.
	ObserveRejection(strategy string, code string)
}

type nopObserver struct{}

func (nopObserver) ObserveComputation(string)       {}
func (nopObserver) ObserveRejection(string, string) {}

// CalculatorService exposes the arithmetic operations with their
// validation policy attached.
type CalculatorService struct {
	inline   *validator.Validator
	boundary *validator.Validator
	observer Observer
}

// NewCalculatorService creates a CalculatorService.
// A nil observer disables event reporting.
func NewCalculatorService(observer Observer) *CalculatorService {
	if observer == nil {
		observer = nopObserver{}
	}
	return &CalculatorService{
		inline:   validator.New(validator.StrategyInline, validator.NonNegative),
		boundary: validator.New(validator.StrategyBoundary, validator.NonNegative),
		observer: observer,
	}
}

// SelectHello returns the service greeting.
func (s *CalculatorService) SelectHello() string {
	return "Hola Service"
}

// CalculateSquareRoot returns the square root of n, or
// domain.ErrNegativeNumber when n is negative.
func (s *CalculatorService) CalculateSquareRoot(n float64) (float64, error) {
	v, err := s.inline.Validate(validator.Number(n))
	if err != nil {
		s.observer.ObserveRejection(s.inline.Strategy().String(), domain.GetErrorCode(err))
		return 0, err
	}
	s.observer.ObserveComputation(OpSquareRoot)
	return calculator.SquareRoot(v), nil
}

// CalculateSquareRootSafe returns the square root of n without checking it.
// n must already have passed NonNegativeOperand.
func (s *CalculatorService) CalculateSquareRootSafe(n float64) float64 {
	s.observer.ObserveComputation(OpSquareRoot)
	return calculator.SquareRoot(n)
}

// NonNegativeOperand runs boundary validation on raw request text.
// Failures are returned as *domain.DomainError with the public message.
func (s *CalculatorService) NonNegativeOperand(raw string) (float64, error) {
	n, err := s.boundary.Validate(validator.Raw(raw))
	if err != nil {
		de := domain.AsBoundaryError(err)
		s.observer.ObserveRejection(s.boundary.Strategy().String(), de.Code)
		return 0, de
	}
	return n, nil
}

// Square returns n*n.
func (s *CalculatorService) Square(n float64) float64 {
	s.observer.ObserveComputation(OpSquare)
	return calculator.Square(n)
}

// Cube returns n*n*n.
func (s *CalculatorService) Cube(n float64) float64 {
	s.observer.ObserveComputation(OpCube)
	return calculator.Cube(n)
}

// Multiply returns a*b.
func (s *CalculatorService) Multiply(a, b float64) float64 {
	s.observer.ObserveComputation(OpMultiply)
	return calculator.Multiply(a, b)
}
