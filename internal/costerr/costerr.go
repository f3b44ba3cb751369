// Package costerr defines the error kinds returned by the cost engines.
package costerr

import (
	"errors"
	"fmt"
	"math"
)

// Kind classifies an engine failure.
type Kind int

const (
	// InvalidInput covers non-numeric or out-of-domain parameters, such as a
	// non-positive economic life or an unknown utilization class.
	InvalidInput Kind = iota + 1

	// ArithmeticDomain covers results that would not be finite numbers.
	ArithmeticDomain
)

// String returns the kind name used in logs and API responses.
func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case ArithmeticDomain:
		return "ArithmeticDomainError"
	default:
		return "Unknown"
	}
}

// Sentinels for errors.Is matching.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrArithmeticDomain = errors.New("arithmetic domain error")
)

// Error is a typed engine failure. Field names the offending parameter when
// there is one.
type Error struct {
	Kind  Kind
	Field string
	Msg   string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Msg)
}

// Is lets errors.Is match an *Error against the kind sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidInput:
		return e.Kind == InvalidInput
	case ErrArithmeticDomain:
		return e.Kind == ArithmeticDomain
	}
	return false
}

// Invalid returns an InvalidInput error for field.
func Invalid(field, format string, args ...any) error {
	return &Error{Kind: InvalidInput, Field: field, Msg: fmt.Sprintf(format, args...)}
}

// Domain returns an ArithmeticDomainError for field.
func Domain(field, format string, args ...any) error {
	return &Error{Kind: ArithmeticDomain, Field: field, Msg: fmt.Sprintf(format, args...)}
}

// KindOf reports the kind of err, or 0 if err is not an engine error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Positive fails with InvalidInput unless v is a finite number greater than zero.
func Positive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Invalid(field, "must be a finite number, got %v", v)
	}
	if v <= 0 {
		return Invalid(field, "must be greater than zero, got %v", v)
	}
	return nil
}

// NonNegative fails with InvalidInput unless v is a finite number >= 0.
func NonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Invalid(field, "must be a finite number, got %v", v)
	}
	if v < 0 {
		return Invalid(field, "must not be negative, got %v", v)
	}
	return nil
}

// Fraction fails with InvalidInput unless v lies in [0, 1].
func Fraction(field string, v float64) error {
	if err := NonNegative(field, v); err != nil {
		return err
	}
	if v > 1 {
		return Invalid(field, "must be a fraction in [0, 1], got %v", v)
	}
	return nil
}

// Finite returns v, or an ArithmeticDomainError if v is NaN or infinite.
func Finite(field string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, Domain(field, "result is not finite (%v)", v)
	}
	return v, nil
}
