package host

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// Native implements Values for plain Go values: the sized and unsized
// integer kinds, float32 and float64, *big.Int, decimal.Decimal, bool and
// string.
type Native struct{}

var _ Values = Native{}

func (Native) IsFloatLike(v any) bool {
	switch v.(type) {
	case float32, float64:
		return true
	}
	return false
}

func (Native) IsCoercibleToLong(v any) bool {
	switch v := v.(type) {
	case int, int8, int16, int32, int64, uint8, uint16, uint32:
		return true
	case uint:
		return uint64(v) <= math.MaxInt64
	case uint64:
		return v <= math.MaxInt64
	case *big.Int:
		return v != nil && v.IsInt64()
	}
	return false
}

func (n Native) IsCoercibleToDouble(v any) bool {
	return n.IsFloatLike(v) || n.IsCoercibleToLong(v)
}

func (n Native) CoerceToDouble(v any) float64 {
	switch v := v.(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	}
	return float64(n.CoerceToLong(v))
}

func (Native) CoerceToLong(v any) int64 {
	switch v := v.(type) {
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case uint:
		return int64(v)
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case uint64:
		return int64(v)
	case *big.Int:
		return v.Int64()
	}
	panic(fmt.Sprintf("host: %v (%T) is not coercible to a long", v, v))
}

func (n Native) AsBigInt(v any) (*big.Int, bool) {
	switch v := v.(type) {
	case *big.Int:
		if v != nil && !v.IsInt64() {
			return v, true
		}
	case big.Int:
		if !v.IsInt64() {
			return &v, true
		}
	case uint:
		if uint64(v) > math.MaxInt64 {
			return new(big.Int).SetUint64(uint64(v)), true
		}
	case uint64:
		if v > math.MaxInt64 {
			return new(big.Int).SetUint64(v), true
		}
	}
	return nil, false
}

func (Native) AsDecimal(v any) (decimal.Decimal, bool) {
	switch v := v.(type) {
	case decimal.Decimal:
		return v, true
	case *decimal.Decimal:
		if v != nil {
			return *v, true
		}
	}
	return decimal.Decimal{}, false
}

func (Native) AsBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func (Native) AsString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}
