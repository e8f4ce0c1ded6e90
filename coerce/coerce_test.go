package coerce_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/brimdata/tabular/coerce"
	"github.com/brimdata/tabular/problem"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntToFloat(t *testing.T) {
	tests := []struct {
		n     int64
		f     float64
		exact bool
	}{
		{0, 0, true},
		{-1, -1, true},
		{1 << 53, 0x1p53, true},
		{1<<53 + 1, 0x1p53, false},
		{-(1 << 53), -0x1p53, true},
		{math.MaxInt64, 0x1p63, false},
		{math.MinInt64, -0x1p63, true},
	}
	for _, tc := range tests {
		f, exact := coerce.IntToFloat(tc.n)
		assert.Equal(t, tc.f, f, "%d", tc.n)
		assert.Equal(t, tc.exact, exact, "%d", tc.n)
	}
}

func TestBigIntToFloat(t *testing.T) {
	n := new(big.Int).Lsh(big.NewInt(1), 70)
	f, exact := coerce.BigIntToFloat(n)
	assert.True(t, exact)
	assert.Equal(t, 0x1p70, f)

	f, exact = coerce.BigIntToFloat(n.Add(n, big.NewInt(1)))
	assert.False(t, exact)
	assert.Equal(t, 0x1p70, f)

	f, exact = coerce.BigIntToFloat(new(big.Int).Lsh(big.NewInt(1), 1100))
	assert.False(t, exact)
	assert.True(t, math.IsInf(f, 1))
}

func TestDecimalToFloat(t *testing.T) {
	f, exact := coerce.DecimalToFloat(decimal.RequireFromString("0.1"))
	assert.True(t, exact)
	assert.Equal(t, 0.1, f)

	_, exact = coerce.DecimalToFloat(decimal.RequireFromString("0.1000000000000000000001"))
	assert.False(t, exact)

	f, exact = coerce.DecimalToFloat(decimal.New(1, 400))
	assert.False(t, exact)
	assert.True(t, math.IsInf(f, 1))
}

func TestFloatToDecimal(t *testing.T) {
	d, ok := coerce.FloatToDecimal(2.5)
	require.True(t, ok)
	assert.Equal(t, "2.5", d.String())
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, ok := coerce.FloatToDecimal(f)
		assert.False(t, ok, "%v", f)
	}
	assert.Equal(t, 1.0, coerce.BoolToFloat(true))
	assert.Equal(t, 0.0, coerce.BoolToFloat(false))
}

func TestReporter(t *testing.T) {
	agg := problem.NewAggregator(0)
	r := coerce.Reporter{Problems: agg}
	assert.Equal(t, 0x1p53, r.IntToFloat(1<<53))
	assert.True(t, agg.Summarize().Empty())

	r.IntToFloat(1<<53 + 1)
	r.IntToFloat(math.MaxInt64)
	b := new(big.Int).Lsh(big.NewInt(1), 70)
	r.BigIntToFloat(b.Add(b, big.NewInt(1)))
	r.DecimalToFloat(decimal.RequireFromString("0.1000000000000000000001"))
	s := agg.Summarize()
	assert.Equal(t, 3, s.Count("LossOfIntegerPrecision"))
	assert.Equal(t, 1, s.Count("LossOfBigDecimalPrecision"))
	e, _ := s.Lookup("LossOfIntegerPrecision")
	assert.Equal(t, int64(1<<53+1), e.Problem.(*problem.LossOfIntegerPrecision).Original)
}
