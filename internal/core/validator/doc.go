// Package validator decides whether an operand may reach the calculator.
//
// Validation is split into two stages:
//
//   - Parse: ParseNumber / ParseInteger turn request text into a typed
//     number or fail with *domain.ParseError
//   - Rules: Rule functions such as NonNegative check domain preconditions
//     and fail with *domain.DomainError
//
// A Validator combines the rules with a Strategy. StrategyBoundary runs both
// stages before computation; StrategyInline trusts an upstream conversion
// and runs only the rules.
package validator
