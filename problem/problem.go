// Package problem collects the non-fatal issues met while building columns
// and running operations over them.  Problems of the same kind collapse
// into a single entry that keeps the first example seen and counts the
// affected rows.
package problem

import (
	"fmt"
	"strconv"

	"github.com/brimdata/tabular"
	"github.com/shopspring/decimal"
)

// A Problem describes something that went wrong for one row.  Problems
// with equal keys are deduplicated by an Aggregator.
type Problem interface {
	Key() string
	Message() string
}

// LossOfIntegerPrecision is reported when an integer cannot be exactly
// represented as a float64.  Original is an int64 or a *big.Int.
type LossOfIntegerPrecision struct {
	Original      any
	Approximation float64
}

func (*LossOfIntegerPrecision) Key() string {
	return "LossOfIntegerPrecision"
}

func (p *LossOfIntegerPrecision) Message() string {
	return fmt.Sprintf("integer %v cannot be exactly represented as a float and was approximated as %s", p.Original, formatFloat(p.Approximation))
}

// LossOfBigDecimalPrecision is reported when a decimal cannot be exactly
// represented as a float64.
type LossOfBigDecimalPrecision struct {
	Original      decimal.Decimal
	Approximation float64
}

func (*LossOfBigDecimalPrecision) Key() string {
	return "LossOfBigDecimalPrecision"
}

func (p *LossOfBigDecimalPrecision) Message() string {
	return fmt.Sprintf("decimal %s cannot be exactly represented as a float and was approximated as %s", p.Original, formatFloat(p.Approximation))
}

// TypeMismatch is reported when a value is replaced by null because the
// column could not hold it.
type TypeMismatch struct {
	Expected tabular.Type
	Value    any
}

func (p *TypeMismatch) Key() string {
	return "TypeMismatch:" + p.Expected.String()
}

func (p *TypeMismatch) Message() string {
	return fmt.Sprintf("value %v (%T) does not fit a %s column and was replaced with null", p.Value, p.Value, p.Expected)
}

// StorageTypeMismatch is reported when a whole storage is skipped because
// its type is not supported where it was used.
type StorageTypeMismatch struct {
	Expected tabular.Type
	Actual   tabular.Type
}

func (p *StorageTypeMismatch) Key() string {
	return "StorageTypeMismatch:" + p.Expected.String() + ":" + p.Actual.String()
}

func (p *StorageTypeMismatch) Message() string {
	return fmt.Sprintf("expected a %s column, got %s", p.Expected, p.Actual)
}

// UnexpectedType records an element an operation could not coerce.  The
// operation itself fails, so this problem only appears in summaries built
// by callers that keep going, e.g., from FromError.
type UnexpectedType struct {
	Op       string
	Expected string
	Value    any
}

func (p *UnexpectedType) Key() string {
	return "UnexpectedType:" + p.Op
}

func (p *UnexpectedType) Message() string {
	return fmt.Sprintf("%s expected %s, got %v (%T)", p.Op, p.Expected, p.Value, p.Value)
}

// DivisionByZero is reported when an exact division or modulus has a zero
// divisor.  The result for that row is null.
type DivisionByZero struct {
	Op       string
	Dividend any
}

func (p *DivisionByZero) Key() string {
	return "DivisionByZero:" + p.Op
}

func (p *DivisionByZero) Message() string {
	return fmt.Sprintf("division by zero in %v %s 0; the result was replaced with null", p.Dividend, p.Op)
}

// ArithmeticOverflow is reported when an exact fixed-width result does not
// fit its type.  The result for that row is null.
type ArithmeticOverflow struct {
	Type tabular.Type
	Op   string
	LHS  any
	RHS  any
}

func (p *ArithmeticOverflow) Key() string {
	return "ArithmeticOverflow:" + p.Op
}

func (p *ArithmeticOverflow) Message() string {
	return fmt.Sprintf("%v %s %v overflows %s; the result was replaced with null", p.LHS, p.Op, p.RHS, p.Type)
}

// FromError converts a builder or operation error into the problem that
// reports it as a null-replaced row.  It returns false for errors that
// have no problem form.
func FromError(err error) (Problem, bool) {
	switch err := err.(type) {
	case *tabular.ValueTypeMismatchError:
		return &TypeMismatch{Expected: err.Expected, Value: err.Value}, true
	case *tabular.StorageTypeMismatchError:
		return &StorageTypeMismatch{Expected: err.Expected, Actual: err.Actual}, true
	case *tabular.UnexpectedTypeError:
		return &UnexpectedType{Op: err.Op, Expected: err.Expected, Value: err.Value}, true
	}
	return nil, false
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
