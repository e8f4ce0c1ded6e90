package host_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/brimdata/tabular"
	"github.com/brimdata/tabular/host"
	"github.com/brimdata/tabular/host/mock"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNative(t *testing.T) {
	var h host.Native
	assert.True(t, h.IsFloatLike(float32(1)))
	assert.False(t, h.IsFloatLike(1))
	assert.True(t, h.IsCoercibleToLong(uint32(math.MaxUint32)))
	assert.True(t, h.IsCoercibleToLong(big.NewInt(-5)))
	assert.False(t, h.IsCoercibleToLong(uint64(math.MaxUint64)))
	assert.False(t, h.IsCoercibleToLong(1.0))
	assert.True(t, h.IsCoercibleToDouble(int8(3)))
	assert.Equal(t, 3.0, h.CoerceToDouble(int8(3)))
	assert.Equal(t, int64(-5), h.CoerceToLong(big.NewInt(-5)))
	assert.Panics(t, func() { h.CoerceToLong("5") })

	n, ok := h.AsBigInt(uint64(math.MaxUint64))
	assert.True(t, ok)
	assert.Equal(t, "18446744073709551615", n.String())
	_, ok = h.AsBigInt(big.NewInt(1))
	assert.False(t, ok)

	d := decimal.New(15, -1)
	got, ok := h.AsDecimal(&d)
	assert.True(t, ok)
	assert.True(t, d.Equal(got))
	_, ok = h.AsBool(1)
	assert.False(t, ok)
	s, ok := h.AsString("x")
	assert.True(t, ok)
	assert.Equal(t, "x", s)
}

func TestTypeOf(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 64)
	tests := []struct {
		value any
		typ   tabular.Type
		norm  any
	}{
		{true, tabular.TypeBool, true},
		{float32(0.5), tabular.TypeFloat64, 0.5},
		{int16(7), tabular.TypeInt64, int64(7)},
		{uint64(math.MaxUint64), tabular.TypeBigInt, new(big.Int).SetUint64(math.MaxUint64)},
		{huge, tabular.TypeBigInt, huge},
		{decimal.New(1, -2), tabular.TypeBigDecimal, decimal.New(1, -2)},
		{"s", tabular.TypeString, "s"},
		{[]byte("s"), tabular.TypeMixed, []byte("s")},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.typ, host.TypeOf(host.Native{}, tc.value), "%v (%T)", tc.value, tc.value)
		assert.Equal(t, tc.norm, host.Normalize(host.Native{}, tc.value), "%v (%T)", tc.value, tc.value)
	}
	assert.Nil(t, host.Normalize(host.Native{}, nil))
}

type celsius float64

func TestTypeOfCustomHost(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := mock.NewMockValues(ctrl)
	h.EXPECT().AsBool(gomock.Any()).Return(false, false).AnyTimes()
	h.EXPECT().IsFloatLike(celsius(21.5)).Return(true).Times(2)
	h.EXPECT().CoerceToDouble(celsius(21.5)).Return(21.5)
	assert.Equal(t, tabular.TypeFloat64, host.TypeOf(h, celsius(21.5)))
	assert.Equal(t, 21.5, host.Normalize(h, celsius(21.5)))
}
