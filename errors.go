package tabular

import (
	"errors"
	"fmt"
)

// ErrContractViolation indicates a bug in the engine or its caller, e.g., a
// retype to a target outside the widening relation or reuse of a sealed
// builder.  It is never recovered or retried.
var ErrContractViolation = errors.New("contract violation")

// ErrValueTypeMismatch is the sentinel matched by ValueTypeMismatchError.
var ErrValueTypeMismatch = errors.New("value type mismatch")

// ErrStorageTypeMismatch is the sentinel matched by StorageTypeMismatchError.
var ErrStorageTypeMismatch = errors.New("storage type mismatch")

// ErrUnexpectedType is the sentinel matched by UnexpectedTypeError.
var ErrUnexpectedType = errors.New("unexpected type")

// ContractViolation returns an error wrapping ErrContractViolation.
func ContractViolation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrContractViolation, fmt.Sprintf(format, args...))
}

// ValueTypeMismatchError is returned when a value outside a builder's
// accepted domain is appended.  Callers avoid it by checking Accepts or by
// retyping first.
type ValueTypeMismatchError struct {
	Expected Type
	Value    any
}

func (e *ValueTypeMismatchError) Error() string {
	return fmt.Sprintf("expected a value of type %s, got %v (%T)", e.Expected, e.Value, e.Value)
}

func (e *ValueTypeMismatchError) Unwrap() error {
	return ErrValueTypeMismatch
}

// StorageTypeMismatchError is returned when a storage of an unsupported type
// is given to a builder or an operation.
type StorageTypeMismatchError struct {
	Expected Type
	Actual   Type
}

func (e *StorageTypeMismatchError) Error() string {
	return fmt.Sprintf("expected storage of type %s, got %s", e.Expected, e.Actual)
}

func (e *StorageTypeMismatchError) Unwrap() error {
	return ErrStorageTypeMismatch
}

// UnexpectedTypeError is returned when an operation meets an element it
// does not know how to coerce.
type UnexpectedTypeError struct {
	Op       string
	Expected string
	Value    any
}

func (e *UnexpectedTypeError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("expected %s, got %v (%T)", e.Expected, e.Value, e.Value)
	}
	return fmt.Sprintf("%s: expected %s, got %v (%T)", e.Op, e.Expected, e.Value, e.Value)
}

func (e *UnexpectedTypeError) Unwrap() error {
	return ErrUnexpectedType
}
