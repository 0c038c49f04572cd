// internal/errors/errors.go
package errors

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kind identifies the class of failure surfaced to the user.
type Kind string

const (
	Parse            Kind = "ParseError"
	InsufficientArgs Kind = "InsufficientArgs"
	InvalidArgument  Kind = "InvalidArgument"
	Domain           Kind = "Domain"
	UnitsMismatch    Kind = "UnitsMismatch"
	UnitsProhibited  Kind = "UnitsProhibited"
	Overflow         Kind = "Overflow"
	ConversionLoss   Kind = "ConversionLoss"
)

// Span locates a failure in the user's input line.
type Span struct {
	Start int
	End   int
}

// CalcError is the error value returned by every failing parser rule or
// function op()/reop(); the driver maps it to a diagnostic and triggers a
// stack rollback.
type CalcError struct {
	Kind    Kind
	Message string
	Span    *Span
	cause   error
}

func (e *CalcError) Error() string {
	var sb strings.Builder
	sb.WriteString(string(e.Kind))
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}
	if e.Span != nil {
		sb.WriteString(fmt.Sprintf(" (at %d:%d)", e.Span.Start, e.Span.End))
	}
	return sb.String()
}

// Unwrap lets errors.Is/errors.As reach the wrapped cause, if any.
func (e *CalcError) Unwrap() error {
	return e.cause
}

// Cause exposes the wrapped cause to github.com/pkg/errors's Cause walk.
func (e *CalcError) Cause() error {
	return e.cause
}

// WithSpan attaches the offending span and returns the receiver for chaining.
func (e *CalcError) WithSpan(start, end int) *CalcError {
	e.Span = &Span{Start: start, End: end}
	return e
}

// New constructs a bare CalcError of the given kind.
func New(kind Kind, message string) *CalcError {
	return &CalcError{Kind: kind, Message: message}
}

// Newf is New with Printf-style formatting.
func Newf(kind Kind, format string, args ...interface{}) *CalcError {
	return &CalcError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a lower-level cause (e.g. a math/big conversion failure) to
// a CalcError, keeping a stack-carrying trace via github.com/pkg/errors so
// the cause can still be inspected with errors.Cause downstream.
func Wrap(kind Kind, cause error, message string) *CalcError {
	return &CalcError{Kind: kind, Message: message, cause: errors.Wrap(cause, message)}
}

// Cause unwraps to the deepest non-CalcError cause, delegating to
// github.com/pkg/errors for the actual walk. A CalcError with no wrapped
// cause is its own cause.
func Cause(err error) error {
	if c := errors.Cause(err); c != nil {
		return c
	}
	return err
}

// Is reports whether err is a *CalcError of the given kind.
func Is(err error, kind Kind) bool {
	ce, ok := err.(*CalcError)
	return ok && ce.Kind == kind
}
