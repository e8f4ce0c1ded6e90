package op

import (
	"math"
	"math/big"

	"github.com/brimdata/tabular"
	"github.com/brimdata/tabular/problem"
	"github.com/shopspring/decimal"
)

var (
	arithOps   = []string{"+", "-", "*", "/", "%"}
	compareOps = []string{"==", "!=", "<", "<=", ">", ">="}
)

func isCompare(name string) bool {
	for _, op := range compareOps {
		if name == op {
			return true
		}
	}
	return false
}

// numericPlan returns the plan of an arithmetic or comparison operator over
// numbers.  Both operands are converted to the common numeric type of the
// two sides, with fixed-width integers computed as int64.  Integer division
// yields a float64.
func numericPlan(name string) Plan {
	return func(lhs, rhs tabular.Type) (tabular.Type, Kernel, bool) {
		if rhs.ID() == tabular.IDMixed && tabular.IsNumber(lhs.ID()) {
			return mixedNumeric(name, lhs)
		}
		dom, ok := numericDomain(lhs, rhs)
		if !ok {
			return nil, nil, false
		}
		return numericResult(name, dom), numericKernel(dom), true
	}
}

func numericDomain(lhs, rhs tabular.Type) (int, bool) {
	if !tabular.IsNumber(lhs.ID()) || !tabular.IsNumber(rhs.ID()) {
		return 0, false
	}
	id := tabular.Common(lhs, rhs).ID()
	if tabular.IsInteger(id) {
		id = tabular.IDInt64
	}
	return id, true
}

func numericResult(name string, dom int) tabular.Type {
	switch {
	case isCompare(name):
		return tabular.TypeBool
	case name == "/" && (dom == tabular.IDInt64 || dom == tabular.IDBigInt):
		return tabular.TypeFloat64
	}
	return tabular.LookupTypeByID(dom)
}

// mixedNumeric picks the kernel per row when the right side is a Mixed
// storage.  Arithmetic results are then Mixed since their type depends on
// the row.
func mixedNumeric(name string, lhs tabular.Type) (tabular.Type, Kernel, bool) {
	var typ tabular.Type = tabular.TypeMixed
	if isCompare(name) {
		typ = tabular.TypeBool
	}
	return typ, func(c *Call, a, b any) (any, error) {
		dom, ok := numericDomain(lhs, c.TypeOf(b))
		if !ok {
			return nil, c.unexpected("number", b)
		}
		return numericKernel(dom)(c, a, c.Normalize(b))
	}, true
}

func numericKernel(dom int) Kernel {
	switch dom {
	case tabular.IDInt64:
		return func(c *Call, a, b any) (any, error) {
			return intOp(c, a.(int64), b.(int64)), nil
		}
	case tabular.IDFloat64:
		return func(c *Call, a, b any) (any, error) {
			return floatOp(c.Op, c.toFloat(a), c.toFloat(b)), nil
		}
	case tabular.IDBigInt:
		return func(c *Call, a, b any) (any, error) {
			return bigOp(c, toBig(a), toBig(b)), nil
		}
	case tabular.IDBigDecimal:
		return func(c *Call, a, b any) (any, error) {
			x, ok := c.toDecimal(a)
			if !ok {
				return nil, nil
			}
			y, ok := c.toDecimal(b)
			if !ok {
				return nil, nil
			}
			return decimalOp(c, x, y), nil
		}
	}
	panic("op: unknown numeric domain")
}

func (c *Call) toFloat(v any) float64 {
	switch v := v.(type) {
	case float64:
		return v
	case int64:
		return c.reporter().IntToFloat(v)
	case *big.Int:
		return c.reporter().BigIntToFloat(v)
	}
	panic("op: not a float operand")
}

func toBig(v any) *big.Int {
	switch v := v.(type) {
	case *big.Int:
		return v
	case int64:
		return big.NewInt(v)
	}
	panic("op: not an integer operand")
}

// toDecimal converts v exactly.  A NaN or infinite float has no decimal
// form; it is reported and the row is null.
func (c *Call) toDecimal(v any) (decimal.Decimal, bool) {
	switch v := v.(type) {
	case decimal.Decimal:
		return v, true
	case int64:
		return decimal.NewFromInt(v), true
	case *big.Int:
		return decimal.NewFromBigInt(v, 0), true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			c.Problems.Report(&problem.TypeMismatch{Expected: tabular.TypeBigDecimal, Value: v})
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat(v), true
	}
	panic("op: not a decimal operand")
}

func (c *Call) divisionByZero(dividend any) any {
	c.Problems.Report(&problem.DivisionByZero{Op: c.Op, Dividend: dividend})
	return nil
}

func (c *Call) overflow(x, y int64) any {
	c.Problems.Report(&problem.ArithmeticOverflow{Type: tabular.TypeInt64, Op: c.Op, LHS: x, RHS: y})
	return nil
}

func intOp(c *Call, x, y int64) any {
	switch c.Op {
	case "+":
		r := x + y
		if (r > x) != (y > 0) {
			return c.overflow(x, y)
		}
		return r
	case "-":
		r := x - y
		if (r < x) != (y > 0) {
			return c.overflow(x, y)
		}
		return r
	case "*":
		if x == 0 || y == 0 {
			return int64(0)
		}
		r := x * y
		if r/y != x || (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
			return c.overflow(x, y)
		}
		return r
	case "/":
		if y == 0 {
			return c.divisionByZero(x)
		}
		return c.toFloat(x) / c.toFloat(y)
	case "%":
		if y == 0 {
			return c.divisionByZero(x)
		}
		return x % y
	}
	return compare(c.Op, cmpOrdered(x, y))
}

func floatOp(name string, x, y float64) any {
	switch name {
	case "+":
		return x + y
	case "-":
		return x - y
	case "*":
		return x * y
	case "/":
		return x / y
	case "%":
		return math.Mod(x, y)
	case "==":
		return x == y
	case "!=":
		return x != y
	case "<":
		return x < y
	case "<=":
		return x <= y
	case ">":
		return x > y
	case ">=":
		return x >= y
	}
	panic("op: unknown float operator " + name)
}

func bigOp(c *Call, x, y *big.Int) any {
	switch c.Op {
	case "+":
		return new(big.Int).Add(x, y)
	case "-":
		return new(big.Int).Sub(x, y)
	case "*":
		return new(big.Int).Mul(x, y)
	case "/":
		if y.Sign() == 0 {
			return c.divisionByZero(x)
		}
		return c.toFloat(x) / c.toFloat(y)
	case "%":
		if y.Sign() == 0 {
			return c.divisionByZero(x)
		}
		return new(big.Int).Rem(x, y)
	}
	return compare(c.Op, x.Cmp(y))
}

func decimalOp(c *Call, x, y decimal.Decimal) any {
	switch c.Op {
	case "+":
		return x.Add(y)
	case "-":
		return x.Sub(y)
	case "*":
		return x.Mul(y)
	case "/":
		if y.IsZero() {
			return c.divisionByZero(x)
		}
		// Rounds to decimal.DivisionPrecision places.
		return x.Div(y)
	case "%":
		if y.IsZero() {
			return c.divisionByZero(x)
		}
		return x.Mod(y)
	}
	return compare(c.Op, x.Cmp(y))
}

func cmpOrdered[T int64 | string](x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// compare maps the result of a three-way comparison to the boolean result
// of the comparison operator name.
func compare(name string, cmp int) bool {
	switch name {
	case "==":
		return cmp == 0
	case "!=":
		return cmp != 0
	case "<":
		return cmp < 0
	case "<=":
		return cmp <= 0
	case ">":
		return cmp > 0
	case ">=":
		return cmp >= 0
	}
	panic("op: unknown comparison " + name)
}
