package builder

import (
	"math"
	"math/big"

	"github.com/brimdata/tabular"
	"github.com/brimdata/tabular/coerce"
	"github.com/brimdata/tabular/problem"
	"github.com/brimdata/tabular/storage"
	"github.com/shopspring/decimal"
)

// Float builds a float64 column.  Integers appended to it are converted,
// and every conversion that does not round-trip is reported as a loss of
// precision.
//
// An inferring Float also keeps the original of each converted integer.
// Its loss reports are deferred to Seal, and it may be retyped to Mixed or
// BigDecimal without losing the integers.
type Float struct {
	buffer[float64]
	originals []original
	nonFinite int
}

// original is an integer (int64 or *big.Int) converted into slot.
type original struct {
	slot  int
	value any
}

var _ Builder = (*Float)(nil)

func newFloatBuilder(e *env, problems *problem.Aggregator, capacity int, inferring bool) *Float {
	b := &Float{buffer: newBuffer[float64](e, problems, capacity)}
	b.inferring = inferring
	return b
}

func (*Float) Type() tabular.Type {
	return tabular.TypeFloat64
}

func (b *Float) Accepts(v any) bool {
	if b.env.host.IsCoercibleToDouble(v) {
		return true
	}
	_, ok := b.env.host.AsBigInt(v)
	return ok
}

func (b *Float) AppendNoGrow(v any) error {
	if err := b.checkRoom(); err != nil {
		return err
	}
	h := b.env.host
	switch {
	case v == nil:
		b.pushNull()
	case h.IsFloatLike(v):
		b.pushFloat(h.CoerceToDouble(v))
	case h.IsCoercibleToLong(v):
		b.pushInt(h.CoerceToLong(v))
	default:
		n, ok := h.AsBigInt(v)
		if !ok {
			return &tabular.ValueTypeMismatchError{Expected: tabular.TypeFloat64, Value: v}
		}
		b.pushBigInt(n)
	}
	return nil
}

func (b *Float) Append(v any) error {
	if err := b.ensureFreeSpaceFor(1); err != nil {
		return err
	}
	return b.AppendNoGrow(v)
}

func (b *Float) AppendFloat64(f float64) error {
	if err := b.ensureFreeSpaceFor(1); err != nil {
		return err
	}
	b.pushFloat(f)
	return nil
}

// AppendInt64 appends n converted to a float64, reporting any loss of
// precision.
func (b *Float) AppendInt64(n int64) error {
	if err := b.ensureFreeSpaceFor(1); err != nil {
		return err
	}
	b.pushInt(n)
	return nil
}

func (b *Float) AppendBigInt(n *big.Int) error {
	if err := b.ensureFreeSpaceFor(1); err != nil {
		return err
	}
	b.pushBigInt(n)
	return nil
}

// AppendDecimal appends d converted to a float64, reporting any loss of
// precision.  The loss is reported immediately even when inferring since
// the decimal is not kept.
func (b *Float) AppendDecimal(d decimal.Decimal) error {
	if err := b.ensureFreeSpaceFor(1); err != nil {
		return err
	}
	b.pushFloat(b.env.reporter(b.problems).DecimalToFloat(d))
	return nil
}

func (b *Float) pushFloat(f float64) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		b.nonFinite++
	}
	b.push(f)
}

func (b *Float) pushInt(n int64) {
	if b.inferring {
		f, _ := coerce.IntToFloat(n)
		b.originals = append(b.originals, original{len(b.vals), n})
		b.push(f)
		return
	}
	b.push(b.env.reporter(b.problems).IntToFloat(n))
}

func (b *Float) pushBigInt(n *big.Int) {
	if b.inferring {
		// An infinite approximation does not block a retype to BigDecimal
		// since the original is kept.
		f, _ := coerce.BigIntToFloat(n)
		b.originals = append(b.originals, original{len(b.vals), new(big.Int).Set(n)})
		b.push(f)
		return
	}
	b.pushFloat(b.env.reporter(b.problems).BigIntToFloat(n))
}

func (b *Float) AppendBulkStorage(s storage.Any) error {
	var value func(int)
	switch src := s.(type) {
	case *storage.Float:
		return b.appendFloats(src)
	case *storage.Int:
		value = func(i int) { b.pushInt(src.Item(i)) }
	case *storage.BigInt:
		value = func(i int) { b.pushBigInt(src.Item(i)) }
	case *storage.Bool:
		// Inference keeps booleans apart from numbers.
		if b.inferring {
			return mismatch(s, tabular.TypeFloat64)
		}
		value = func(i int) { b.push(coerce.BoolToFloat(src.Item(i))) }
	default:
		return mismatch(s, tabular.TypeFloat64)
	}
	b.env.logBulk(tabular.TypeFloat64, s)
	n := s.Len()
	if err := b.ensureFreeSpaceFor(n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if s.IsNull(i) {
			b.pushNull()
		} else {
			value(i)
		}
	}
	return nil
}

// appendFloats copies the values of src in one step.
func (b *Float) appendFloats(src *storage.Float) error {
	b.env.logBulk(tabular.TypeFloat64, src)
	n := src.Len()
	if err := b.ensureFreeSpaceFor(n); err != nil {
		return err
	}
	start := len(b.vals)
	b.vals = src.AppendValues(b.vals)
	for i := 0; i < n; i++ {
		switch f := b.vals[start+i]; {
		case src.IsNull(i):
			b.nulls.Set(start + i)
		case math.IsNaN(f) || math.IsInf(f, 0):
			b.nonFinite++
		}
	}
	return nil
}

func (b *Float) CanRetypeTo(typ tabular.Type) bool {
	switch typ.ID() {
	case tabular.IDBigDecimal:
		return b.nonFinite == 0
	case tabular.IDMixed:
		return b.inferring
	}
	return false
}

func (b *Float) RetypeTo(typ tabular.Type) (Builder, error) {
	if err := b.checkOpen(); err != nil {
		return nil, err
	}
	if !b.CanRetypeTo(typ) {
		return nil, retypeError(tabular.TypeFloat64, typ)
	}
	n, capacity := b.Len(), b.Cap()
	var out Builder
	switch typ.ID() {
	case tabular.IDBigDecimal:
		res := newDecimalBuilder(b.env, b.problems, capacity)
		b.migrate(func(f float64) {
			d, _ := coerce.FloatToDecimal(f)
			res.push(d)
		}, func(v any) {
			switch v := v.(type) {
			case int64:
				res.push(decimal.NewFromInt(v))
			case *big.Int:
				res.push(decimal.NewFromBigInt(v, 0))
			}
		}, res.pushNull)
		out = res
	case tabular.IDMixed:
		res := newMixedBuilder(b.env, b.problems, capacity)
		b.migrate(func(f float64) { res.push(f) }, func(v any) { res.push(v) }, res.pushNull)
		out = res
	default:
		return nil, retypeError(tabular.TypeFloat64, typ)
	}
	b.abandon()
	b.env.logRetype(tabular.TypeFloat64, typ, n)
	return out, nil
}

// migrate calls float for each row holding a float, integer for each row
// converted from a kept integer, and null for each null row.
func (b *Float) migrate(float func(float64), integer func(any), null func()) {
	next := 0
	for i, f := range b.vals {
		switch {
		case b.isNull(i):
			null()
		case next < len(b.originals) && b.originals[next].slot == i:
			integer(b.originals[next].value)
			next++
		default:
			float(f)
		}
	}
}

// Seal reports the deferred losses of an inferring builder, in row order,
// and returns the storage.
func (b *Float) Seal() (storage.Any, error) {
	if err := b.checkOpen(); err != nil {
		return nil, err
	}
	r := b.env.reporter(b.problems)
	for _, o := range b.originals {
		switch v := o.value.(type) {
		case int64:
			r.IntToFloat(v)
		case *big.Int:
			r.BigIntToFloat(v)
		}
	}
	b.originals = nil
	vals, nulls, err := b.seal()
	if err != nil {
		return nil, err
	}
	return storage.NewFloat(vals, nulls), nil
}
