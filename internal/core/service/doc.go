// Package service provides domain services for Numera.
//
// Domain services orchestrate the validator and the calculator. They hold
// no request state and are safe for concurrent use.
//
// This package contains:
//
//   - CalculatorService: greeting, inline-checked square root, and the
//     unchecked square root used behind boundary validation
//   - Observer: hook for counting computations and rejections
package service
