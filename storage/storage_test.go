package storage_test

import (
	"math/big"
	"testing"

	"github.com/brimdata/tabular"
	"github.com/brimdata/tabular/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBitmap(t *testing.T) {
	b := storage.NewBitmap(70)
	assert.Equal(t, 128, b.Cap())
	b.Set(0)
	b.Set(63)
	b.SetRange(64, 67)
	assert.True(t, b.Has(63))
	assert.True(t, b.Has(66))
	assert.False(t, b.Has(67))
	assert.False(t, b.Has(-1))
	assert.False(t, b.Has(1000))
	assert.Equal(t, 5, b.Count(70))
	assert.Equal(t, 1, b.Count(63))
	assert.Equal(t, 2, b.Count(64))

	grown := b.Grow(200)
	assert.Equal(t, 256, grown.Cap())
	assert.True(t, grown.Has(65))
	assert.Len(t, b.Grow(10), len(b))

	trimmed := b.Trim(65)
	assert.Equal(t, 3, trimmed.Count(trimmed.Cap()))
	assert.False(t, trimmed.Has(65))
}

func TestNewAllNull(t *testing.T) {
	for id := 0; id <= tabular.IDMixed; id++ {
		typ := tabular.LookupTypeByID(id)
		s := storage.NewAllNull(typ, 5)
		assert.Equal(t, typ, s.Type())
		assert.Equal(t, 5, s.Len())
		assert.Equal(t, 5, storage.NullCount(s), typ.String())
		assert.Equal(t, make([]any, 5), storage.Values(s))
	}
	assert.Equal(t, 0, storage.NewAllNull(tabular.TypeString, 0).Len())
}

func TestNilElementsAreNull(t *testing.T) {
	b := storage.NewBigInt([]*big.Int{big.NewInt(1), nil}, nil)
	assert.True(t, b.IsNull(1))
	assert.Nil(t, b.Value(1))
	assert.Equal(t, 1, storage.NullCount(b))

	m := storage.NewMixed([]any{nil, []int{1}, "x"}, nil)
	assert.True(t, m.IsNull(0))
	assert.Equal(t, []any{nil, []int{1}, "x"}, storage.Values(m))
}

func TestBigIntItemIsCopy(t *testing.T) {
	b := storage.NewBigInt([]*big.Int{big.NewInt(5)}, nil)
	b.Item(0).SetInt64(6)
	assert.Equal(t, "5", b.Item(0).String())
}

func TestValues(t *testing.T) {
	nulls := storage.NewBitmap(3)
	nulls.Set(1)
	values := storage.NewBitmap(3)
	values.Set(0)
	values.Set(1)
	b := storage.NewBool(values, nulls, 3)
	assert.Equal(t, []any{true, nil, false}, storage.Values(b))

	i := storage.NewInt(tabular.TypeInt16, []int64{1, 0, -3}, nulls)
	assert.Equal(t, []any{int64(1), nil, int64(-3)}, storage.Values(i))
	assert.Equal(t, []int64{1, 0, -3}, i.AppendValues(nil))

	f := storage.NewFloat([]float64{0.5, 0, 2}, nulls)
	assert.Equal(t, []any{0.5, nil, 2.0}, storage.Values(f))

	d := storage.NewDecimal([]decimal.Decimal{decimal.NewFromInt(1), {}, decimal.New(5, -1)}, nulls)
	assert.True(t, d.IsNull(1))
	assert.Equal(t, "0.5", d.Item(2).String())

	s := storage.NewString([]string{"a", "", ""}, nulls)
	assert.Equal(t, []any{"a", nil, ""}, storage.Values(s))
}
