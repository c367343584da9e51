// Package handler provides HTTP request handlers for Numera.
//
// This package contains handlers for all HTTP endpoints:
//
//   - greeting.go: greeting, parameter and body echo endpoints
//   - arithmetic.go: square, multiply, cube and square root
//   - service.go: square root through CalculatorService, one route per
//     error-reporting strategy
//   - health.go: health, readiness and version
//
// Operands reach a handler through a pipe (pipe.go) that converts or
// rejects the raw path/query text. Domain errors raised inside a handler
// are either mapped by the handler itself or by the business-error filter
// (filter.go).
package handler
