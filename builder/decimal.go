package builder

import (
	"math"

	"github.com/brimdata/tabular"
	"github.com/brimdata/tabular/coerce"
	"github.com/brimdata/tabular/problem"
	"github.com/brimdata/tabular/storage"
	"github.com/shopspring/decimal"
)

// Decimal builds a column of arbitrary-precision decimals.  Integers are
// stored exactly and finite floats as their shortest decimal form.
type Decimal struct {
	buffer[decimal.Decimal]
}

var _ Builder = (*Decimal)(nil)

func newDecimalBuilder(e *env, problems *problem.Aggregator, capacity int) *Decimal {
	return &Decimal{buffer: newBuffer[decimal.Decimal](e, problems, capacity)}
}

func (*Decimal) Type() tabular.Type {
	return tabular.TypeBigDecimal
}

func (b *Decimal) Accepts(v any) bool {
	_, ok := b.convert(v)
	return ok
}

func (b *Decimal) convert(v any) (decimal.Decimal, bool) {
	h := b.env.host
	if d, ok := h.AsDecimal(v); ok {
		return d, true
	}
	if h.IsFloatLike(v) {
		return coerce.FloatToDecimal(h.CoerceToDouble(v))
	}
	if h.IsCoercibleToLong(v) {
		return decimal.NewFromInt(h.CoerceToLong(v)), true
	}
	if n, ok := h.AsBigInt(v); ok {
		return decimal.NewFromBigInt(n, 0), true
	}
	return decimal.Decimal{}, false
}

func (b *Decimal) AppendNoGrow(v any) error {
	if err := b.checkRoom(); err != nil {
		return err
	}
	if v == nil {
		b.pushNull()
		return nil
	}
	d, ok := b.convert(v)
	if !ok {
		return &tabular.ValueTypeMismatchError{Expected: tabular.TypeBigDecimal, Value: v}
	}
	b.push(d)
	return nil
}

func (b *Decimal) Append(v any) error {
	if err := b.ensureFreeSpaceFor(1); err != nil {
		return err
	}
	return b.AppendNoGrow(v)
}

func (b *Decimal) AppendDecimal(d decimal.Decimal) error {
	if err := b.ensureFreeSpaceFor(1); err != nil {
		return err
	}
	b.push(d)
	return nil
}

// AppendBulkStorage appends the rows of a Decimal, Int, BigInt or Float
// storage.  A Float storage holding a NaN or an infinity is rejected before
// any row is copied.
func (b *Decimal) AppendBulkStorage(s storage.Any) error {
	var value func(int) decimal.Decimal
	switch src := s.(type) {
	case *storage.Decimal:
		value = src.Item
	case *storage.Int:
		value = func(i int) decimal.Decimal { return decimal.NewFromInt(src.Item(i)) }
	case *storage.BigInt:
		value = func(i int) decimal.Decimal { return decimal.NewFromBigInt(src.Item(i), 0) }
	case *storage.Float:
		for i := 0; i < src.Len(); i++ {
			if f := src.Item(i); !src.IsNull(i) && (math.IsNaN(f) || math.IsInf(f, 0)) {
				return &tabular.ValueTypeMismatchError{Expected: tabular.TypeBigDecimal, Value: f}
			}
		}
		value = func(i int) decimal.Decimal { return decimal.NewFromFloat(src.Item(i)) }
	default:
		return mismatch(s, tabular.TypeBigDecimal)
	}
	b.env.logBulk(tabular.TypeBigDecimal, s)
	n := s.Len()
	if err := b.ensureFreeSpaceFor(n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if s.IsNull(i) {
			b.pushNull()
		} else {
			b.push(value(i))
		}
	}
	return nil
}

func (b *Decimal) CanRetypeTo(typ tabular.Type) bool {
	return tabular.CanWiden(tabular.TypeBigDecimal, typ)
}

func (b *Decimal) RetypeTo(typ tabular.Type) (Builder, error) {
	if err := b.checkOpen(); err != nil {
		return nil, err
	}
	if !b.CanRetypeTo(typ) {
		return nil, retypeError(tabular.TypeBigDecimal, typ)
	}
	n := b.Len()
	res := newMixedBuilder(b.env, b.problems, b.Cap())
	for i, v := range b.vals {
		if b.isNull(i) {
			res.pushNull()
		} else {
			res.push(v)
		}
	}
	b.abandon()
	b.env.logRetype(tabular.TypeBigDecimal, typ, n)
	return res, nil
}

func (b *Decimal) Seal() (storage.Any, error) {
	vals, nulls, err := b.seal()
	if err != nil {
		return nil, err
	}
	return storage.NewDecimal(vals, nulls), nil
}
