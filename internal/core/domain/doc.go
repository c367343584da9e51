// Package domain defines the core domain values for Numera.
//
// The types here are request-scoped and carry no IO dependencies:
//
//   - DomainError: classified failure (kind, code, message)
//   - ParseError: operand text that is not a finite number
//
// Nothing in this package holds state between requests.
package domain
