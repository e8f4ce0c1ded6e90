package builder

import (
	"math/big"

	"github.com/brimdata/tabular"
	"github.com/brimdata/tabular/problem"
	"github.com/brimdata/tabular/storage"
	"github.com/shopspring/decimal"
)

// Int builds a column of fixed-width integers.  Values outside the width
// are rejected.
type Int struct {
	buffer[int64]
	typ *tabular.TypeOfInt
}

var _ Builder = (*Int)(nil)

func newIntBuilder(e *env, problems *problem.Aggregator, typ *tabular.TypeOfInt, capacity int) *Int {
	return &Int{buffer: newBuffer[int64](e, problems, capacity), typ: typ}
}

func (b *Int) Type() tabular.Type {
	return b.typ
}

func (b *Int) Accepts(v any) bool {
	h := b.env.host
	return h.IsCoercibleToLong(v) && b.typ.Fits(h.CoerceToLong(v))
}

func (b *Int) AppendNoGrow(v any) error {
	if err := b.checkRoom(); err != nil {
		return err
	}
	if v == nil {
		b.pushNull()
		return nil
	}
	if !b.Accepts(v) {
		return &tabular.ValueTypeMismatchError{Expected: b.typ, Value: v}
	}
	b.push(b.env.host.CoerceToLong(v))
	return nil
}

func (b *Int) Append(v any) error {
	if err := b.ensureFreeSpaceFor(1); err != nil {
		return err
	}
	return b.AppendNoGrow(v)
}

// AppendInt64 appends n, which must fit the builder's width.
func (b *Int) AppendInt64(n int64) error {
	if !b.typ.Fits(n) {
		return &tabular.ValueTypeMismatchError{Expected: b.typ, Value: n}
	}
	if err := b.ensureFreeSpaceFor(1); err != nil {
		return err
	}
	b.push(n)
	return nil
}

func (b *Int) AppendBulkStorage(s storage.Any) error {
	src, ok := s.(*storage.Int)
	if !ok || (src.Typ != b.typ && !tabular.CanWiden(src.Typ, b.typ)) {
		return mismatch(s, b.typ)
	}
	b.env.logBulk(b.typ, s)
	n := src.Len()
	if err := b.ensureFreeSpaceFor(n); err != nil {
		return err
	}
	start := len(b.vals)
	b.vals = src.AppendValues(b.vals)
	for i := 0; i < n; i++ {
		if src.IsNull(i) {
			b.nulls.Set(start + i)
		}
	}
	return nil
}

func (b *Int) CanRetypeTo(typ tabular.Type) bool {
	return tabular.CanWiden(b.typ, typ)
}

func (b *Int) RetypeTo(typ tabular.Type) (Builder, error) {
	if err := b.checkOpen(); err != nil {
		return nil, err
	}
	if !b.CanRetypeTo(typ) {
		return nil, retypeError(b.typ, typ)
	}
	n, capacity := b.Len(), b.Cap()
	var out Builder
	switch typ := typ.(type) {
	case *tabular.TypeOfInt:
		res := newIntBuilder(b.env, b.problems, typ, capacity)
		b.migrate(func(v int64) { res.push(v) }, res.pushNull)
		out = res
	case *tabular.TypeOfFloat64:
		res := newFloatBuilder(b.env, b.problems, capacity, b.inferring)
		b.migrate(res.pushInt, res.pushNull)
		out = res
	case *tabular.TypeOfBigInt:
		res := newBigIntBuilder(b.env, b.problems, capacity)
		b.migrate(func(v int64) { res.push(big.NewInt(v)) }, res.pushNull)
		out = res
	case *tabular.TypeOfBigDecimal:
		res := newDecimalBuilder(b.env, b.problems, capacity)
		b.migrate(func(v int64) { res.push(decimal.NewFromInt(v)) }, res.pushNull)
		out = res
	case *tabular.TypeOfMixed:
		res := newMixedBuilder(b.env, b.problems, capacity)
		b.migrate(func(v int64) { res.push(v) }, res.pushNull)
		out = res
	default:
		return nil, retypeError(b.typ, typ)
	}
	b.abandon()
	b.env.logRetype(b.typ, typ, n)
	return out, nil
}

func (b *Int) migrate(value func(int64), null func()) {
	for i, v := range b.vals {
		if b.isNull(i) {
			null()
		} else {
			value(v)
		}
	}
}

func (b *Int) Seal() (storage.Any, error) {
	vals, nulls, err := b.seal()
	if err != nil {
		return nil, err
	}
	return storage.NewInt(b.typ, vals, nulls), nil
}
