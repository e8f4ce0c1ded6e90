// Package arrowio converts sealed storages to and from Apache Arrow arrays.
// Big integers and decimals map to Arrow's 128-bit decimal type, so values
// with more than 38 digits cannot be exported.  Mixed storages have no
// Arrow form.
package arrowio

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/apache/arrow/go/v11/arrow"
	"github.com/apache/arrow/go/v11/arrow/array"
	"github.com/apache/arrow/go/v11/arrow/decimal128"
	"github.com/apache/arrow/go/v11/arrow/memory"
	"github.com/brimdata/tabular"
	"github.com/brimdata/tabular/builder"
	"github.com/brimdata/tabular/problem"
	"github.com/brimdata/tabular/storage"
	"github.com/shopspring/decimal"
)

const maxPrecision = 38

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrOutOfRange     = errors.New("value out of range for Arrow decimal128")

	maxDecimal128 = new(big.Int).Exp(big.NewInt(10), big.NewInt(maxPrecision), nil)
)

// Export returns an Arrow array holding the rows of s, allocated from mem.
// The caller must release the array.
func Export(mem memory.Allocator, s storage.Any) (arrow.Array, error) {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	switch s := s.(type) {
	case *storage.Bool:
		b := array.NewBooleanBuilder(mem)
		defer b.Release()
		appendRows(s, b.AppendNull, func(i int) { b.Append(s.Item(i)) })
		return b.NewArray(), nil
	case *storage.Int:
		return exportInt(mem, s)
	case *storage.Float:
		b := array.NewFloat64Builder(mem)
		defer b.Release()
		appendRows(s, b.AppendNull, func(i int) { b.Append(s.Item(i)) })
		return b.NewArray(), nil
	case *storage.BigInt:
		return exportDecimal(mem, s, 0, func(i int) *big.Int { return s.Item(i) })
	case *storage.Decimal:
		var scale int32
		for i := 0; i < s.Len(); i++ {
			if e := s.Item(i).Exponent(); !s.IsNull(i) && -e > scale {
				scale = -e
			}
		}
		if scale > maxPrecision {
			return nil, fmt.Errorf("arrowio: scale %d exceeds precision %d: %w", scale, maxPrecision, ErrOutOfRange)
		}
		return exportDecimal(mem, s, scale, func(i int) *big.Int {
			return s.Item(i).Shift(scale).BigInt()
		})
	case *storage.String:
		b := array.NewStringBuilder(mem)
		defer b.Release()
		appendRows(s, b.AppendNull, func(i int) { b.Append(s.Item(i)) })
		return b.NewArray(), nil
	}
	return nil, fmt.Errorf("arrowio: export of %s storage: %w", s.Type(), ErrNotImplemented)
}

func exportInt(mem memory.Allocator, s *storage.Int) (arrow.Array, error) {
	switch s.Typ.ID() {
	case tabular.IDInt8:
		b := array.NewInt8Builder(mem)
		defer b.Release()
		appendRows(s, b.AppendNull, func(i int) { b.Append(int8(s.Item(i))) })
		return b.NewArray(), nil
	case tabular.IDInt16:
		b := array.NewInt16Builder(mem)
		defer b.Release()
		appendRows(s, b.AppendNull, func(i int) { b.Append(int16(s.Item(i))) })
		return b.NewArray(), nil
	case tabular.IDInt32:
		b := array.NewInt32Builder(mem)
		defer b.Release()
		appendRows(s, b.AppendNull, func(i int) { b.Append(int32(s.Item(i))) })
		return b.NewArray(), nil
	case tabular.IDInt64:
		b := array.NewInt64Builder(mem)
		defer b.Release()
		appendRows(s, b.AppendNull, func(i int) { b.Append(s.Item(i)) })
		return b.NewArray(), nil
	}
	return nil, tabular.ContractViolation("integer storage of type %s", s.Typ)
}

// exportDecimal builds a decimal128 array of the given scale from the
// unscaled value of each row.  Every value is checked before the array is
// built.
func exportDecimal(mem memory.Allocator, s storage.Any, scale int32, unscaled func(int) *big.Int) (arrow.Array, error) {
	nums := make([]decimal128.Num, s.Len())
	for i := range nums {
		if s.IsNull(i) {
			continue
		}
		v := unscaled(i)
		if new(big.Int).Abs(v).Cmp(maxDecimal128) >= 0 {
			return nil, fmt.Errorf("arrowio: row %d: %w", i, ErrOutOfRange)
		}
		nums[i] = decimal128.FromBigInt(v)
	}
	b := array.NewDecimal128Builder(mem, &arrow.Decimal128Type{Precision: maxPrecision, Scale: scale})
	defer b.Release()
	appendRows(s, b.AppendNull, func(i int) { b.Append(nums[i]) })
	return b.NewArray(), nil
}

func appendRows(s storage.Any, null func(), value func(int)) {
	for i := 0; i < s.Len(); i++ {
		if s.IsNull(i) {
			null()
		} else {
			value(i)
		}
	}
}

// Import returns a storage holding the values of a.  Unsigned integers are
// stored in the narrowest signed type that holds them, with uint64 columns
// inferred as int64 or bigint.  Problems met while building the storage are
// reported to a child of agg.
func Import(a arrow.Array, agg *problem.Aggregator, opts ...builder.Option) (storage.Any, error) {
	n := a.Len()
	switch a := a.(type) {
	case *array.Null:
		return storage.NewAllNull(tabular.TypeMixed, n), nil
	case *array.Boolean:
		return build(tabular.TypeBool, a, agg, opts, func(i int) any { return a.Value(i) })
	case *array.Int8:
		return build(tabular.TypeInt8, a, agg, opts, func(i int) any { return a.Value(i) })
	case *array.Int16:
		return build(tabular.TypeInt16, a, agg, opts, func(i int) any { return a.Value(i) })
	case *array.Int32:
		return build(tabular.TypeInt32, a, agg, opts, func(i int) any { return a.Value(i) })
	case *array.Int64:
		return build(tabular.TypeInt64, a, agg, opts, func(i int) any { return a.Value(i) })
	case *array.Uint8:
		return build(tabular.TypeInt16, a, agg, opts, func(i int) any { return a.Value(i) })
	case *array.Uint16:
		return build(tabular.TypeInt32, a, agg, opts, func(i int) any { return a.Value(i) })
	case *array.Uint32:
		return build(tabular.TypeInt64, a, agg, opts, func(i int) any { return a.Value(i) })
	case *array.Uint64:
		return build(nil, a, agg, opts, func(i int) any { return a.Value(i) })
	case *array.Float32:
		return build(tabular.TypeFloat64, a, agg, opts, func(i int) any { return a.Value(i) })
	case *array.Float64:
		return build(tabular.TypeFloat64, a, agg, opts, func(i int) any { return a.Value(i) })
	case *array.String:
		return build(tabular.TypeString, a, agg, opts, func(i int) any { return a.Value(i) })
	case *array.LargeString:
		return build(tabular.TypeString, a, agg, opts, func(i int) any { return a.Value(i) })
	case *array.Decimal128:
		scale := a.DataType().(*arrow.Decimal128Type).Scale
		return build(tabular.TypeBigDecimal, a, agg, opts, func(i int) any {
			return decimal.NewFromBigInt(a.Value(i).BigInt(), -scale)
		})
	}
	return nil, fmt.Errorf("arrowio: import of Arrow %s: %w", a.DataType(), ErrNotImplemented)
}

// build appends the rows of a to a builder of type typ, or to an inferring
// builder if typ is nil.
func build(typ tabular.Type, a arrow.Array, agg *problem.Aggregator, opts []builder.Option, value func(int) any) (storage.Any, error) {
	var b builder.Builder
	if typ == nil {
		b = builder.NewInferred(a.Len(), agg, opts...)
	} else {
		var err error
		if b, err = builder.New(typ, a.Len(), agg, opts...); err != nil {
			return nil, err
		}
	}
	for i := 0; i < a.Len(); i++ {
		var v any
		if !a.IsNull(i) {
			v = value(i)
		}
		if err := b.Append(v); err != nil {
			return nil, err
		}
	}
	return b.Seal()
}
