package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrIntegrityViolation indicates that a write was rejected by a uniqueness,
// referential or check constraint of the store.
var ErrIntegrityViolation = errors.New("integrity violation")

// ErrConversionInputNotFound indicates that one side of a conversion could not be resolved.
var ErrConversionInputNotFound = errors.New("conversion input not found")

// ErrArithmetic indicates that a computation has no defined result (e.g. a zero divisor).
var ErrArithmetic = errors.New("arithmetic failure")

// NotFoundError reports a lookup by id or composite key that matched no row.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a NotFoundError for the given entity and key.
func NewNotFoundError(entity string, key any) error {
	return &NotFoundError{Entity: entity, Key: fmt.Sprint(key)}
}

// NewValidationError wraps ErrValidation with a message.
func NewValidationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// IntegrityViolationError is a write rejected by a store constraint.
// Constraint is the name of the violated constraint when the store reports one.
type IntegrityViolationError struct {
	Constraint string
	Detail     string
	Err        error
}

func (e *IntegrityViolationError) Error() string {
	msg := "integrity violation"
	if e.Constraint != "" {
		msg += " on " + e.Constraint
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *IntegrityViolationError) Is(target error) bool {
	return target == ErrIntegrityViolation
}

func (e *IntegrityViolationError) Unwrap() error {
	return e.Err
}

// NewIntegrityViolation creates an IntegrityViolationError.
func NewIntegrityViolation(constraint, detail string, cause error) error {
	return &IntegrityViolationError{Constraint: constraint, Detail: detail, Err: cause}
}

// ConversionSide names which input of a conversion failed to resolve.
type ConversionSide string

const (
	ConversionSideFrom ConversionSide = "from"
	ConversionSideTo   ConversionSide = "to"
)

// ConversionInputNotFoundError reports that the as-of-date lookup for one side
// of a conversion found nothing.
type ConversionInputNotFoundError struct {
	Side ConversionSide
	Err  error
}

func (e *ConversionInputNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("conversion input '%s' not found: %v", e.Side, e.Err)
	}
	return fmt.Sprintf("conversion input '%s' not found", e.Side)
}

func (e *ConversionInputNotFoundError) Is(target error) bool {
	return target == ErrConversionInputNotFound
}

func (e *ConversionInputNotFoundError) Unwrap() error {
	return e.Err
}

// NewConversionInputNotFound creates a ConversionInputNotFoundError.
func NewConversionInputNotFound(side ConversionSide, cause error) error {
	return &ConversionInputNotFoundError{Side: side, Err: cause}
}

// ArithmeticError reports an undefined computation.
type ArithmeticError struct {
	Reason string
}

func (e *ArithmeticError) Error() string {
	return "arithmetic failure: " + e.Reason
}

func (e *ArithmeticError) Is(target error) bool {
	return target == ErrArithmetic
}

// NewArithmeticError creates an ArithmeticError.
func NewArithmeticError(reason string) error {
	return &ArithmeticError{Reason: reason}
}
