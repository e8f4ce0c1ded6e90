package host

import (
	"github.com/brimdata/tabular"
)

// TypeOf returns the narrowest storage type that holds v without loss.
// Long-coercible values map to Int64 regardless of their width, and values
// h does not recognize map to Mixed.
func TypeOf(h Values, v any) tabular.Type {
	if _, ok := h.AsBool(v); ok {
		return tabular.TypeBool
	}
	if h.IsFloatLike(v) {
		return tabular.TypeFloat64
	}
	if h.IsCoercibleToLong(v) {
		return tabular.TypeInt64
	}
	if _, ok := h.AsBigInt(v); ok {
		return tabular.TypeBigInt
	}
	if _, ok := h.AsDecimal(v); ok {
		return tabular.TypeBigDecimal
	}
	if _, ok := h.AsString(v); ok {
		return tabular.TypeString
	}
	return tabular.TypeMixed
}

// Normalize converts v to the Go value a storage of type TypeOf(h, v)
// returns from Value: bool, float64, int64, *big.Int, decimal.Decimal or
// string.  Nil and unrecognized values are returned unchanged.
func Normalize(h Values, v any) any {
	if v == nil {
		return nil
	}
	if b, ok := h.AsBool(v); ok {
		return b
	}
	if h.IsFloatLike(v) {
		return h.CoerceToDouble(v)
	}
	if h.IsCoercibleToLong(v) {
		return h.CoerceToLong(v)
	}
	if n, ok := h.AsBigInt(v); ok {
		return n
	}
	if d, ok := h.AsDecimal(v); ok {
		return d
	}
	if s, ok := h.AsString(v); ok {
		return s
	}
	return v
}
