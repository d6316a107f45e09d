package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for classification with errors.Is. Every structured error
// type in this package unwraps to exactly one of these.
var (
	ErrObjectNotFound         = errors.New("object not found")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrValueIsOutOfRange      = errors.New("value is out of range")
	ErrValueIsRequired        = errors.New("value is required")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrWrongDocumentKind      = errors.New("wrong document kind")
)

// ObjectNotFoundError indicates that a referenced object does not exist.
// ParamName identifies which reference failed (e.g. "document", "delivery"),
// ID carries the identifier that was looked up.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause, typically a storage error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("object not found: param is: %s, ID is: %s (cause: %s)", e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("object not found: %s", e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping the
// validation failure that caused it.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is invalid: %s (cause: %s)", e.ParamName, e.Cause)
	}
	return fmt.Sprintf("value is invalid: %s", e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is required: %s (cause: %s)", e.ParamName, e.Cause)
	}
	return fmt.Sprintf("value is required: %s", e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsOutOfRangeError indicates that a numeric value lies outside its
// permitted [Min, Max] interval.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping
// an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is invalid: %v is %s, min value is %v, max value is %v (cause: %s)",
			e.Value, e.ParamName, e.Min, e.Max, e.Cause)
	}
	return fmt.Sprintf("value is invalid: %v is %s, min value is %v, max value is %v",
		e.Value, e.ParamName, e.Min, e.Max)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// InvalidStateTransitionError indicates that a guarded lifecycle operation was
// attempted from a state that does not allow it. Entity names the record
// ("document", "delivery"), Current is the state the record is in, Requested
// is the state the operation tried to reach.
type InvalidStateTransitionError struct {
	Entity    string
	Current   string
	Requested string
	Cause     error
}

// NewInvalidStateTransitionError creates an InvalidStateTransitionError
// carrying the current and requested states so callers can render a precise
// rejection message.
func NewInvalidStateTransitionError(entity, current, requested string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{Entity: entity, Current: current, Requested: requested}
}

// NewInvalidStateTransitionErrorWithCause creates an InvalidStateTransitionError
// wrapping the guard failure that caused it.
func NewInvalidStateTransitionErrorWithCause(entity, current, requested string, cause error) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{Entity: entity, Current: current, Requested: requested, Cause: cause}
}

func (e *InvalidStateTransitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid state transition: %s cannot move from %s to %s (cause: %s)",
			e.Entity, e.Current, e.Requested, e.Cause)
	}
	return fmt.Sprintf("invalid state transition: %s cannot move from %s to %s",
		e.Entity, e.Current, e.Requested)
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// WrongDocumentKindError indicates that an operation was attempted against a
// sales document of a kind it does not apply to, e.g. recording a payment
// against a quote.
type WrongDocumentKindError struct {
	Operation string
	Kind      string
}

// NewWrongDocumentKindError creates a WrongDocumentKindError naming the
// rejected operation and the document kind it was attempted on.
func NewWrongDocumentKindError(operation, kind string) *WrongDocumentKindError {
	return &WrongDocumentKindError{Operation: operation, Kind: kind}
}

func (e *WrongDocumentKindError) Error() string {
	return fmt.Sprintf("wrong document kind: %s is not allowed for %s documents", e.Operation, e.Kind)
}

func (e *WrongDocumentKindError) Unwrap() error {
	return ErrWrongDocumentKind
}
