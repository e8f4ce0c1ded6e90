package builder

import (
	"math/big"

	"github.com/brimdata/tabular"
	"github.com/brimdata/tabular/problem"
	"github.com/brimdata/tabular/storage"
	"github.com/shopspring/decimal"
)

// BigInt builds a column of arbitrary-precision integers.
type BigInt struct {
	buffer[*big.Int]
}

var _ Builder = (*BigInt)(nil)

func newBigIntBuilder(e *env, problems *problem.Aggregator, capacity int) *BigInt {
	return &BigInt{buffer: newBuffer[*big.Int](e, problems, capacity)}
}

func (*BigInt) Type() tabular.Type {
	return tabular.TypeBigInt
}

func (b *BigInt) Accepts(v any) bool {
	if b.env.host.IsCoercibleToLong(v) {
		return true
	}
	_, ok := b.env.host.AsBigInt(v)
	return ok
}

func (b *BigInt) AppendNoGrow(v any) error {
	if err := b.checkRoom(); err != nil {
		return err
	}
	h := b.env.host
	switch {
	case v == nil:
		b.pushNull()
	case h.IsCoercibleToLong(v):
		b.push(big.NewInt(h.CoerceToLong(v)))
	default:
		n, ok := h.AsBigInt(v)
		if !ok {
			return &tabular.ValueTypeMismatchError{Expected: tabular.TypeBigInt, Value: v}
		}
		b.push(new(big.Int).Set(n))
	}
	return nil
}

func (b *BigInt) Append(v any) error {
	if err := b.ensureFreeSpaceFor(1); err != nil {
		return err
	}
	return b.AppendNoGrow(v)
}

// AppendBigInt appends a copy of n.  A nil n appends a null.
func (b *BigInt) AppendBigInt(n *big.Int) error {
	if err := b.ensureFreeSpaceFor(1); err != nil {
		return err
	}
	if n == nil {
		b.pushNull()
	} else {
		b.push(new(big.Int).Set(n))
	}
	return nil
}

func (b *BigInt) AppendBulkStorage(s storage.Any) error {
	var value func(int) *big.Int
	switch src := s.(type) {
	case *storage.BigInt:
		value = src.Item
	case *storage.Int:
		value = func(i int) *big.Int { return big.NewInt(src.Item(i)) }
	default:
		return mismatch(s, tabular.TypeBigInt)
	}
	b.env.logBulk(tabular.TypeBigInt, s)
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

func (b *BigInt) CanRetypeTo(typ tabular.Type) bool {
	return tabular.CanWiden(tabular.TypeBigInt, typ)
}

func (b *BigInt) RetypeTo(typ tabular.Type) (Builder, error) {
	if err := b.checkOpen(); err != nil {
		return nil, err
	}
	if !b.CanRetypeTo(typ) {
		return nil, retypeError(tabular.TypeBigInt, typ)
	}
	n, capacity := b.Len(), b.Cap()
	var out Builder
	switch typ.ID() {
	case tabular.IDFloat64:
		res := newFloatBuilder(b.env, b.problems, capacity, b.inferring)
		b.migrate(res.pushBigInt, res.pushNull)
		out = res
	case tabular.IDBigDecimal:
		res := newDecimalBuilder(b.env, b.problems, capacity)
		b.migrate(func(v *big.Int) { res.push(decimal.NewFromBigInt(v, 0)) }, res.pushNull)
		out = res
	case tabular.IDMixed:
		res := newMixedBuilder(b.env, b.problems, capacity)
		b.migrate(func(v *big.Int) { res.push(v) }, res.pushNull)
		out = res
	default:
		return nil, retypeError(tabular.TypeBigInt, typ)
	}
	b.abandon()
	b.env.logRetype(tabular.TypeBigInt, typ, n)
	return out, nil
}

func (b *BigInt) migrate(value func(*big.Int), null func()) {
	for i, v := range b.vals {
		if b.isNull(i) {
			null()
		} else {
			value(v)
		}
	}
}

func (b *BigInt) Seal() (storage.Any, error) {
	vals, nulls, err := b.seal()
	if err != nil {
		return nil, err
	}
	return storage.NewBigInt(vals, nulls), nil
}
