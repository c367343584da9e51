// Package domain defines the core domain models for Numera.
package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a DomainError independently of its code.
type Kind string

const (
	// KindInvalidArgument covers every rejected operand: non-numeric text
	// and values that break a domain precondition.
	KindInvalidArgument Kind = "invalid_argument"

	// KindBadRequest covers malformed requests (e.g. an undecodable body).
	KindBadRequest Kind = "bad_request"

	// KindInternal covers failures that are not the caller's fault.
	KindInternal Kind = "internal"
)

// DomainError represents a business domain error with a structured error code.
// Error codes follow the NM-<FAMILY>-<NNNN> format.
type DomainError struct {
	Kind    Kind   // Error classification
	Code    string // Error code (e.g., "NM-ARG-4001")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given kind, code and message.
func NewDomainError(kind Kind, code, message string) *DomainError {
	return &DomainError{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Kind:    e.Kind,
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Kind:    e.Kind,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// Wrap wraps an error with this domain error as the cause.
func (e *DomainError) Wrap(cause error) *DomainError {
	return e.WithCause(cause)
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// AsDomainError returns the first DomainError in err's chain, or nil.
func AsDomainError(err error) *DomainError {
	var de *DomainError
	if errors.As(err, &de) {
		return de
	}
	return nil
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	if de := AsDomainError(err); de != nil {
		return de.Code
	}
	return ""
}

// GetErrorKind extracts the kind from an error if it's a DomainError.
func GetErrorKind(err error) Kind {
	if de := AsDomainError(err); de != nil {
		return de.Kind
	}
	return ""
}

// ============================================================================
// Argument Errors (ARG)
// ============================================================================

var (
	// ErrNegativeNumber indicates an operand below zero where the operation
	// requires a non-negative one. The message is part of the public contract.
	ErrNegativeNumber = NewDomainError(KindInvalidArgument, "NM-ARG-4001", "Negative number")

	// ErrNumericStringExpected indicates the operand text is not a number.
	// The message is part of the public contract.
	ErrNumericStringExpected = NewDomainError(KindInvalidArgument, "NM-ARG-4002", "Validation failed (numeric string is expected)")
)

// ============================================================================
// System Errors (SYS)
// ============================================================================

var (
	// ErrBadRequest indicates a malformed request.
	ErrBadRequest = NewDomainError(KindBadRequest, "NM-SYS-4000", "bad request")

	// ErrRateLimited indicates too many requests.
	ErrRateLimited = NewDomainError(KindBadRequest, "NM-SYS-4290", "too many requests")

	// ErrInternalServer indicates an internal server error.
	ErrInternalServer = NewDomainError(KindInternal, "NM-SYS-5000", "internal server error")
)
