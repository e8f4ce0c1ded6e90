package builder_test

import (
	"math/big"
	"testing"

	"github.com/brimdata/tabular"
	"github.com/brimdata/tabular/builder"
	"github.com/brimdata/tabular/problem"
	"github.com/brimdata/tabular/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferredTypes(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 80)
	cases := []struct {
		name   string
		values []any
		typ    tabular.Type
	}{
		{"bool", []any{true, nil, false}, tabular.TypeBool},
		{"int", []any{1, int8(2), nil, uint32(3)}, tabular.TypeInt64},
		{"float", []any{1.5, float32(2)}, tabular.TypeFloat64},
		{"int then float", []any{1, 2.5}, tabular.TypeFloat64},
		{"int then bigint", []any{1, huge}, tabular.TypeBigInt},
		{"int then decimal", []any{1, decimal.RequireFromString("0.1")}, tabular.TypeBigDecimal},
		{"float then decimal", []any{0.5, decimal.RequireFromString("0.1")}, tabular.TypeBigDecimal},
		{"string", []any{"a", nil, "b"}, tabular.TypeString},
		{"int then string", []any{1, "a"}, tabular.TypeMixed},
		{"bool then int", []any{true, 1}, tabular.TypeMixed},
		{"int then bool", []any{1, true}, tabular.TypeMixed},
		{"float then bool", []any{1.5, true}, tabular.TypeMixed},
		{"unknown", []any{struct{}{}}, tabular.TypeMixed},
		{"all null", []any{nil, nil}, tabular.TypeMixed},
		{"empty", nil, tabular.TypeMixed},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := builder.Infer(c.values, nil)
			require.NoError(t, err)
			assert.Equal(t, c.typ, s.Type())
			assert.Equal(t, len(c.values), s.Len())
			for i, v := range c.values {
				assert.Equal(t, v == nil, s.IsNull(i), "row %d", i)
			}
		})
	}
}

func TestInferredLeadingNulls(t *testing.T) {
	b := builder.NewInferred(1, nil)
	require.NoError(t, b.Append(nil))
	require.NoError(t, b.Append(nil))
	require.NoError(t, b.AppendNulls(2))
	assert.Equal(t, tabular.TypeMixed, b.Type())
	assert.Equal(t, 4, b.Len())
	require.NoError(t, b.Append(7))
	assert.Equal(t, tabular.TypeInt64, b.Type())
	s, err := b.Seal()
	require.NoError(t, err)
	assert.Equal(t, []any{nil, nil, nil, nil, int64(7)}, storage.Values(s))
}

func TestInferredNullsKeepType(t *testing.T) {
	cases := []struct {
		values []any
		typ    tabular.Type
		want   []any
	}{
		{[]any{int64(1), nil, int64(2)}, tabular.TypeInt64, []any{int64(1), nil, int64(2)}},
		{[]any{"a", nil}, tabular.TypeString, []any{"a", nil}},
		{[]any{1.5, nil}, tabular.TypeFloat64, []any{1.5, nil}},
		{[]any{true, nil}, tabular.TypeBool, []any{true, nil}},
	}
	for _, c := range cases {
		s, err := builder.Infer(c.values, nil)
		require.NoError(t, err)
		assert.Equal(t, c.typ, s.Type())
		assert.Equal(t, c.want, storage.Values(s))
	}
	b := builder.NewInferred(0, nil)
	require.NoError(t, b.Append(1))
	require.NoError(t, b.AppendNulls(2))
	assert.Equal(t, tabular.TypeInt64, b.Type())
	assert.Equal(t, 3, b.Len())
}

func TestInferredBoolWithNumbers(t *testing.T) {
	appended := builder.NewInferred(0, nil)
	require.NoError(t, appended.Append(1.5))
	require.NoError(t, appended.Append(true))
	s, err := appended.Seal()
	require.NoError(t, err)
	assert.Equal(t, tabular.TypeMixed, s.Type())
	assert.Equal(t, []any{1.5, true}, storage.Values(s))

	bulk := builder.NewInferred(0, nil)
	require.NoError(t, bulk.Append(1.5))
	require.NoError(t, bulk.AppendBulkStorage(storage.NewBool(bitmap(0), nil, 1)))
	s, err = bulk.Seal()
	require.NoError(t, err)
	assert.Equal(t, tabular.TypeMixed, s.Type())
	assert.Equal(t, []any{1.5, true}, storage.Values(s))
}

func TestInferredFloatKeepsIntegers(t *testing.T) {
	big53 := int64(1)<<53 + 1
	t.Run("sealed as float", func(t *testing.T) {
		agg := problem.NewAggregator(0)
		b := builder.NewInferred(0, agg)
		require.NoError(t, b.Append(big53))
		require.NoError(t, b.Append(0.5))
		assert.True(t, agg.Summarize().Empty())
		s, err := b.Seal()
		require.NoError(t, err)
		assert.Equal(t, tabular.TypeFloat64, s.Type())
		assert.Equal(t, 1, agg.Summarize().Count(lossKey))
	})
	t.Run("widened to mixed", func(t *testing.T) {
		agg := problem.NewAggregator(0)
		b := builder.NewInferred(0, agg)
		for _, v := range []any{big53, 0.5, nil, "x"} {
			require.NoError(t, b.Append(v))
		}
		s, err := b.Seal()
		require.NoError(t, err)
		assert.Equal(t, tabular.TypeMixed, s.Type())
		assert.Equal(t, []any{big53, 0.5, nil, "x"}, storage.Values(s))
		assert.True(t, agg.Summarize().Empty())
	})
	t.Run("widened to decimal", func(t *testing.T) {
		agg := problem.NewAggregator(0)
		b := builder.NewInferred(0, agg)
		for _, v := range []any{big53, 0.25, decimal.RequireFromString("0.1")} {
			require.NoError(t, b.Append(v))
		}
		s, err := b.Seal()
		require.NoError(t, err)
		d := s.(*storage.Decimal)
		assert.True(t, d.Item(0).Equal(decimal.NewFromInt(big53)))
		assert.True(t, d.Item(1).Equal(decimal.RequireFromString("0.25")))
		assert.True(t, agg.Summarize().Empty())
	})
	t.Run("bigint through float", func(t *testing.T) {
		huge := new(big.Int).Lsh(big.NewInt(1), 2000)
		s, err := builder.Infer([]any{1, huge, 0.5, "x"}, nil)
		require.NoError(t, err)
		assert.Equal(t, tabular.TypeMixed, s.Type())
		assert.Equal(t, 0, huge.Cmp(s.Value(1).(*big.Int)))
	})
}

func TestInferredBulk(t *testing.T) {
	b := builder.NewInferred(0, nil)
	require.NoError(t, b.AppendBulkStorage(storage.NewInt(tabular.TypeInt16, []int64{1, 2}, nil)))
	assert.Equal(t, tabular.TypeInt64, b.Type())
	require.NoError(t, b.AppendBulkStorage(storage.NewFloat([]float64{0.5}, nil)))
	assert.Equal(t, tabular.TypeFloat64, b.Type())
	require.NoError(t, b.AppendBulkStorage(storage.NewString([]string{"a"}, nil)))
	assert.Equal(t, tabular.TypeMixed, b.Type())
	s, err := b.Seal()
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), int64(2), 0.5, "a"}, storage.Values(s))
}

func TestInferredSealOnce(t *testing.T) {
	b := builder.NewInferred(0, nil)
	_, err := b.Seal()
	require.NoError(t, err)
	_, err = b.Seal()
	assert.ErrorIs(t, err, tabular.ErrContractViolation)
	assert.ErrorIs(t, b.Append(1), tabular.ErrContractViolation)
}
