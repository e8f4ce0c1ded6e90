// Package coerce converts numbers between storage representations.  Each
// conversion to float64 checks that the result converts back to the
// original exactly; the checked variants report inexact conversions as
// precision-loss problems but always return the best approximation.
package coerce

import (
	"math"
	"math/big"

	"github.com/brimdata/tabular/problem"
	"github.com/shopspring/decimal"
)

// IntToFloat converts n to the nearest float64 and reports whether the
// conversion is exact.
func IntToFloat(n int64) (float64, bool) {
	f := float64(n)
	// Values near MaxInt64 round up to 2^63, which is out of range for the
	// conversion back.
	if f >= 0x1p63 {
		return f, false
	}
	return f, int64(f) == n
}

// BigIntToFloat converts b to the nearest float64, or an infinity if b is
// out of range, and reports whether the conversion is exact.
func BigIntToFloat(b *big.Int) (float64, bool) {
	f, _ := new(big.Float).SetInt(b).Float64()
	if math.IsInf(f, 0) {
		return f, false
	}
	back, _ := big.NewFloat(f).Int(nil)
	return f, back.Cmp(b) == 0
}

// DecimalToFloat converts d to a float64.  An infinite result is always
// inexact.  Otherwise the result is exact if the shortest decimal form of
// the float is numerically equal to d.
func DecimalToFloat(d decimal.Decimal) (float64, bool) {
	f, _ := d.Float64()
	if math.IsInf(f, 0) {
		return f, false
	}
	return f, decimal.NewFromFloat(f).Equal(d)
}

// FloatToDecimal returns the decimal with the shortest representation that
// converts back to f.  It returns false for NaN and infinities.
func FloatToDecimal(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromFloat(f), true
}

func BoolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Reporter performs checked conversions, reporting each inexact one to
// Problems.
type Reporter struct {
	Problems *problem.Aggregator
}

func (r Reporter) IntToFloat(n int64) float64 {
	f, exact := IntToFloat(n)
	if !exact {
		r.Problems.Report(&problem.LossOfIntegerPrecision{Original: n, Approximation: f})
	}
	return f
}

func (r Reporter) BigIntToFloat(b *big.Int) float64 {
	f, exact := BigIntToFloat(b)
	if !exact {
		r.Problems.Report(&problem.LossOfIntegerPrecision{Original: new(big.Int).Set(b), Approximation: f})
	}
	return f
}

func (r Reporter) DecimalToFloat(d decimal.Decimal) float64 {
	f, exact := DecimalToFloat(d)
	if !exact {
		r.Problems.Report(&problem.LossOfBigDecimalPrecision{Original: d, Approximation: f})
	}
	return f
}
