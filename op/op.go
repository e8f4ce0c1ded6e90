// Package op applies named binary operations to sealed storages, either
// between each row and a scalar (RunScalar) or pairwise between the rows of
// two storages (RunZip).  Null rows produce null results without invoking
// the operation, and each call writes its problems to a child of the
// aggregator it is given.  A call that fails or is cancelled returns no
// storage and its problems are discarded.
//
// Decimal division is the one inexact decimal operation: quotients are
// rounded half away from zero to decimal.DivisionPrecision (16) places
// and no problem is reported for the rounding.
package op

import (
	"context"

	"github.com/brimdata/tabular"
	"github.com/brimdata/tabular/builder"
	"github.com/brimdata/tabular/coerce"
	"github.com/brimdata/tabular/host"
	"github.com/brimdata/tabular/problem"
	"github.com/brimdata/tabular/storage"
)

type Operation interface {
	Name() string
	RunScalar(ctx context.Context, s storage.Any, arg any, agg *problem.Aggregator) (storage.Any, error)
	RunZip(ctx context.Context, s, other storage.Any, agg *problem.Aggregator) (storage.Any, error)
}

// Call is the state shared by the rows of one operation call.
type Call struct {
	Op       string
	Problems *problem.Aggregator
	host     host.Values
}

// Normalize converts a row of a Mixed storage to its canonical Go form.
func (c *Call) Normalize(v any) any {
	return host.Normalize(c.host, v)
}

// TypeOf returns the storage type of a row of a Mixed storage.
func (c *Call) TypeOf(v any) tabular.Type {
	return host.TypeOf(c.host, v)
}

func (c *Call) reporter() coerce.Reporter {
	return coerce.Reporter{Problems: c.Problems}
}

// unexpected returns the error ending a call that met v where it expected
// a value described by expected.
func (c *Call) unexpected(expected string, v any) error {
	return &tabular.UnexpectedTypeError{Op: c.Op, Expected: expected, Value: v}
}

// A Kernel computes the result for one pair of non-null operands.  A nil
// result is stored as null.  An error ends the call.
type Kernel func(c *Call, a, b any) (any, error)

// A Plan picks the result type and the kernel for operands of types lhs
// and rhs.  It returns false if the operation is not defined for them.
type Plan func(lhs, rhs tabular.Type) (tabular.Type, Kernel, bool)

// Binary is an Operation computed row by row by the kernel its plan picks.
type Binary struct {
	name     string
	expected string
	host     host.Values
	plan     Plan
}

var _ Operation = (*Binary)(nil)

// NewBinary returns an operation called name.  Expected describes the
// right operands plan accepts, for error messages.  Scalar arguments are
// converted with h.
func NewBinary(name, expected string, h host.Values, plan Plan) *Binary {
	if h == nil {
		h = host.Native{}
	}
	return &Binary{name: name, expected: expected, host: h, plan: plan}
}

func (b *Binary) Name() string {
	return b.name
}

// RunScalar applies the operation between each row of s and arg.  A nil
// arg yields an all-null storage of the length of s.
func (b *Binary) RunScalar(ctx context.Context, s storage.Any, arg any, agg *problem.Aggregator) (storage.Any, error) {
	if arg == nil {
		return storage.NewAllNull(b.nullType(s.Type()), s.Len()), nil
	}
	typ, kernel, ok := b.plan(s.Type(), host.TypeOf(b.host, arg))
	if !ok {
		return nil, &tabular.UnexpectedTypeError{Op: b.name, Expected: b.expected, Value: arg}
	}
	arg = host.Normalize(b.host, arg)
	return b.scan(ctx, typ, s.Len(), agg, func(c *Call, i int) (any, error) {
		if s.IsNull(i) {
			return nil, nil
		}
		return kernel(c, s.Value(i), arg)
	})
}

// RunZip applies the operation between the rows of s and other at each
// position.  The result is as long as the longer input, and a position
// past the end of either input is null.
func (b *Binary) RunZip(ctx context.Context, s, other storage.Any, agg *problem.Aggregator) (storage.Any, error) {
	typ, kernel, ok := b.plan(s.Type(), other.Type())
	if !ok {
		return nil, &tabular.UnexpectedTypeError{Op: b.name, Expected: b.expected, Value: firstValue(other)}
	}
	n := s.Len()
	if other.Len() > n {
		n = other.Len()
	}
	return b.scan(ctx, typ, n, agg, func(c *Call, i int) (any, error) {
		if i >= s.Len() || i >= other.Len() || s.IsNull(i) || other.IsNull(i) {
			return nil, nil
		}
		return kernel(c, s.Value(i), other.Value(i))
	})
}

// scan builds a storage of type typ from n rows computed by row, checking
// ctx after each one.
func (b *Binary) scan(ctx context.Context, typ tabular.Type, n int, agg *problem.Aggregator, row func(*Call, int) (any, error)) (storage.Any, error) {
	out, err := builder.New(typ, n, agg)
	if err != nil {
		return nil, err
	}
	c := &Call{Op: b.name, Problems: out.Problems(), host: b.host}
	for i := 0; i < n; i++ {
		v, err := row(c, i)
		if err == nil {
			err = out.AppendNoGrow(v)
		}
		if err == nil {
			err = ctx.Err()
		}
		if err != nil {
			c.Problems.Discard()
			return nil, err
		}
	}
	return out.Seal()
}

// nullType is the result type for a null scalar argument.
func (b *Binary) nullType(typ tabular.Type) tabular.Type {
	if typ, _, ok := b.plan(typ, typ); ok {
		return typ
	}
	return tabular.TypeMixed
}

// firstValue returns the first non-null row of s, or its type if every row
// is null.
func firstValue(s storage.Any) any {
	for i := 0; i < s.Len(); i++ {
		if v := s.Value(i); v != nil {
			return v
		}
	}
	return s.Type()
}
