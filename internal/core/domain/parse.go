// Package domain defines the core domain models for Numera.
package domain

import (
	"errors"
	"fmt"
)

// ParseError reports operand text that could not be read as a number.
//
// It is produced by the parse stage, before any domain rule runs. At the
// HTTP boundary it is reported as ErrNumericStringExpected; errors.Is
// matches the two.
type ParseError struct {
	Input string // Raw text as received
	Cause error  // Conversion error (if any)
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse %q: %v", e.Input, e.Cause)
	}
	return fmt.Sprintf("parse %q: not a finite number", e.Input)
}

// Unwrap returns the conversion error.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports ErrNumericStringExpected as equivalent.
func (e *ParseError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return t.Code == ErrNumericStringExpected.Code
	}
	_, ok := target.(*ParseError)
	return ok
}

// NewParseError creates a ParseError for the given input.
func NewParseError(input string, cause error) *ParseError {
	return &ParseError{Input: input, Cause: cause}
}

// AsBoundaryError converts err into the DomainError reported to callers.
// ParseErrors become ErrNumericStringExpected; DomainErrors pass through;
// anything else yields nil.
func AsBoundaryError(err error) *DomainError {
	if err == nil {
		return nil
	}
	if de := AsDomainError(err); de != nil {
		return de
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return ErrNumericStringExpected.WithCause(pe)
	}
	return nil
}
