// Package calculator provides the arithmetic behind every Numera endpoint.
//
// All functions are pure. Preconditions (such as a non-negative operand for
// SquareRoot) are enforced by package validator before these are called.
package calculator

import "math"

// Square returns n*n.
func Square(n float64) float64 {
	return n * n
}

// Cube returns n*n*n.
func Cube(n float64) float64 {
	return n * n * n
}

// Multiply returns a*b.
func Multiply(a, b float64) float64 {
	return a * b
}

// SquareRoot returns the principal square root of n.
// n must be non-negative.
func SquareRoot(n float64) float64 {
	return math.Sqrt(n)
}
