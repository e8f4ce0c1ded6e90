// Package storage holds sealed columns: immutable typed buffers with a null
// bitmap and a length.  A storage is never modified after construction, so
// it may be read from any number of goroutines without synchronization.
// Constructors take ownership of the buffers passed to them.
package storage

import (
	"fmt"
	"math/big"

	"github.com/brimdata/tabular"
	"github.com/shopspring/decimal"
)

// Any is the read interface shared by all storages.
type Any interface {
	Type() tabular.Type
	Len() int
	// IsNull returns true iff row i holds no value.
	IsNull(i int) bool
	// Value returns row i boxed for cross-type consumers, or nil if the
	// row is null.
	Value(i int) any
}

type nulls struct {
	bits Bitmap
}

func (n nulls) IsNull(i int) bool {
	return n.bits.Has(i)
}

// nullCount returns the number of null rows among the first len rows.
func (n nulls) nullCount(len int) int {
	return n.bits.Count(len)
}

// markNil sets the bit in nullmask of every nil element of values.
func markNil[T comparable](values []T, nullmask Bitmap) Bitmap {
	var zero T
	for k, v := range values {
		if v == zero {
			nullmask = nullmask.Grow(k + 1)
			nullmask.Set(k)
		}
	}
	return nullmask
}

// NewAllNull returns a storage of type typ and length n in which every row
// is null.
func NewAllNull(typ tabular.Type, n int) Any {
	bits := NewBitmap(n)
	bits.SetRange(0, n)
	switch typ := typ.(type) {
	case *tabular.TypeOfBool:
		return NewBool(NewBitmap(n), bits, n)
	case *tabular.TypeOfInt:
		return NewInt(typ, make([]int64, n), bits)
	case *tabular.TypeOfFloat64:
		return NewFloat(make([]float64, n), bits)
	case *tabular.TypeOfBigInt:
		return NewBigInt(make([]*big.Int, n), bits)
	case *tabular.TypeOfBigDecimal:
		return NewDecimal(make([]decimal.Decimal, n), bits)
	case *tabular.TypeOfString:
		return NewString(make([]string, n), bits)
	case *tabular.TypeOfMixed:
		return NewMixed(make([]any, n), bits)
	}
	panic(fmt.Sprintf("storage: unknown type %s", typ))
}

// NullCount returns the number of null rows in s.
func NullCount(s Any) int {
	if n, ok := s.(interface{ nullCount(int) int }); ok {
		return n.nullCount(s.Len())
	}
	var c int
	for i := 0; i < s.Len(); i++ {
		if s.IsNull(i) {
			c++
		}
	}
	return c
}

// Values returns the boxed values of s, with nil for null rows.
func Values(s Any) []any {
	out := make([]any, s.Len())
	for i := range out {
		out[i] = s.Value(i)
	}
	return out
}
