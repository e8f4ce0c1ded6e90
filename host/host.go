//go:generate mockgen -destination=./mock/mock_host.go -package=mock github.com/brimdata/tabular/host Values

// Package host defines the boundary between the column engine and the value
// model of the language hosting it.  The engine never inspects host values
// directly; it asks a Values implementation whether a value can be coerced
// and to convert it.
package host

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Values is the capability interface consumed by builders.  Coerce methods
// may only be called on values for which the matching predicate is true.
type Values interface {
	IsFloatLike(v any) bool
	IsCoercibleToLong(v any) bool
	IsCoercibleToDouble(v any) bool
	CoerceToDouble(v any) float64
	CoerceToLong(v any) int64
	// AsBigInt returns v as an arbitrary precision integer if v is an
	// integer that is not coercible to a long.
	AsBigInt(v any) (*big.Int, bool)
	AsDecimal(v any) (decimal.Decimal, bool)
	AsBool(v any) (bool, bool)
	AsString(v any) (string, bool)
}
