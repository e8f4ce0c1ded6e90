package tabular_test

import (
	"testing"

	"github.com/brimdata/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanWiden(t *testing.T) {
	tests := []struct {
		from, to tabular.Type
		ok       bool
	}{
		{tabular.TypeInt8, tabular.TypeInt16, true},
		{tabular.TypeInt8, tabular.TypeInt64, true},
		{tabular.TypeInt32, tabular.TypeInt16, false},
		{tabular.TypeInt64, tabular.TypeFloat64, true},
		{tabular.TypeInt64, tabular.TypeBigInt, true},
		{tabular.TypeInt64, tabular.TypeBigDecimal, true},
		{tabular.TypeInt64, tabular.TypeMixed, true},
		{tabular.TypeInt64, tabular.TypeInt64, false},
		{tabular.TypeFloat64, tabular.TypeBigDecimal, true},
		{tabular.TypeFloat64, tabular.TypeMixed, false},
		{tabular.TypeFloat64, tabular.TypeInt64, false},
		{tabular.TypeBigInt, tabular.TypeFloat64, true},
		{tabular.TypeBigInt, tabular.TypeInt64, false},
		{tabular.TypeBigDecimal, tabular.TypeFloat64, false},
		{tabular.TypeBool, tabular.TypeFloat64, true},
		{tabular.TypeBool, tabular.TypeInt64, false},
		{tabular.TypeString, tabular.TypeMixed, true},
		{tabular.TypeMixed, tabular.TypeString, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.ok, tabular.CanWiden(tc.from, tc.to), "%s to %s", tc.from, tc.to)
	}
}

func TestCommon(t *testing.T) {
	tests := []struct {
		a, b, common tabular.Type
	}{
		{tabular.TypeInt8, tabular.TypeInt8, tabular.TypeInt8},
		{tabular.TypeInt8, tabular.TypeInt32, tabular.TypeInt32},
		{tabular.TypeInt64, tabular.TypeFloat64, tabular.TypeFloat64},
		{tabular.TypeInt64, tabular.TypeBigInt, tabular.TypeBigInt},
		{tabular.TypeInt16, tabular.TypeBigDecimal, tabular.TypeBigDecimal},
		{tabular.TypeFloat64, tabular.TypeBigDecimal, tabular.TypeBigDecimal},
		{tabular.TypeFloat64, tabular.TypeBigInt, tabular.TypeFloat64},
		{tabular.TypeBigInt, tabular.TypeBigDecimal, tabular.TypeBigDecimal},
		{tabular.TypeBool, tabular.TypeFloat64, tabular.TypeFloat64},
		{tabular.TypeBool, tabular.TypeInt64, tabular.TypeMixed},
		{tabular.TypeString, tabular.TypeInt64, tabular.TypeMixed},
		{tabular.TypeFloat64, tabular.TypeString, tabular.TypeMixed},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.common, tabular.Common(tc.a, tc.b), "%s and %s", tc.a, tc.b)
		assert.Equal(t, tc.common, tabular.Common(tc.b, tc.a), "%s and %s", tc.b, tc.a)
	}
}

func TestLookupType(t *testing.T) {
	for id := 0; ; id++ {
		typ := tabular.LookupTypeByID(id)
		if typ == nil {
			assert.Equal(t, 10, id)
			break
		}
		assert.Equal(t, id, typ.ID())
		found, err := tabular.LookupType(typ.String())
		require.NoError(t, err)
		assert.Same(t, typ, found)
	}
	typ, err := tabular.LookupType(" Double ")
	require.NoError(t, err)
	assert.Equal(t, tabular.TypeFloat64, typ)
	_, err = tabular.LookupType("date")
	assert.EqualError(t, err, `unknown storage type "date"`)
	assert.Nil(t, tabular.LookupTypeByID(-1))
}

func TestIntFits(t *testing.T) {
	assert.True(t, tabular.TypeInt8.Fits(-128))
	assert.False(t, tabular.TypeInt8.Fits(128))
	assert.True(t, tabular.TypeInt32.Fits(-1<<31))
	assert.False(t, tabular.TypeInt32.Fits(1<<31))
	assert.True(t, tabular.TypeInt64.Fits(-1<<63))
}

func TestErrors(t *testing.T) {
	err := tabular.ContractViolation("retype of %s to %s", tabular.TypeMixed, tabular.TypeString)
	assert.ErrorIs(t, err, tabular.ErrContractViolation)
	assert.EqualError(t, err, "contract violation: retype of mixed to string")

	var vtm error = &tabular.ValueTypeMismatchError{Expected: tabular.TypeInt8, Value: "x"}
	assert.ErrorIs(t, vtm, tabular.ErrValueTypeMismatch)
	assert.EqualError(t, vtm, "expected a value of type int8, got x (string)")

	var ute error = &tabular.UnexpectedTypeError{Op: "+", Expected: "number", Value: true}
	assert.ErrorIs(t, ute, tabular.ErrUnexpectedType)
	assert.EqualError(t, ute, "+: expected number, got true (bool)")
}
