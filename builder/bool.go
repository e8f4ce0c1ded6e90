package builder

import (
	"github.com/brimdata/tabular"
	"github.com/brimdata/tabular/coerce"
	"github.com/brimdata/tabular/problem"
	"github.com/brimdata/tabular/storage"
)

type Bool struct {
	buffer[bool]
}

var _ Builder = (*Bool)(nil)

func newBoolBuilder(e *env, problems *problem.Aggregator, capacity int) *Bool {
	return &Bool{buffer: newBuffer[bool](e, problems, capacity)}
}

func (*Bool) Type() tabular.Type {
	return tabular.TypeBool
}

func (b *Bool) Accepts(v any) bool {
	_, ok := b.env.host.AsBool(v)
	return ok
}

func (b *Bool) AppendNoGrow(v any) error {
	if err := b.checkRoom(); err != nil {
		return err
	}
	if v == nil {
		b.pushNull()
		return nil
	}
	x, ok := b.env.host.AsBool(v)
	if !ok {
		return &tabular.ValueTypeMismatchError{Expected: tabular.TypeBool, Value: v}
	}
	b.push(x)
	return nil
}

func (b *Bool) Append(v any) error {
	if err := b.ensureFreeSpaceFor(1); err != nil {
		return err
	}
	return b.AppendNoGrow(v)
}

func (b *Bool) AppendBool(x bool) error {
	if err := b.ensureFreeSpaceFor(1); err != nil {
		return err
	}
	b.push(x)
	return nil
}

func (b *Bool) AppendBulkStorage(s storage.Any) error {
	src, ok := s.(*storage.Bool)
	if !ok {
		return mismatch(s, tabular.TypeBool)
	}
	b.env.logBulk(tabular.TypeBool, s)
	n := src.Len()
	if err := b.ensureFreeSpaceFor(n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if src.IsNull(i) {
			b.pushNull()
		} else {
			b.push(src.Item(i))
		}
	}
	return nil
}

func (b *Bool) CanRetypeTo(typ tabular.Type) bool {
	return tabular.CanWiden(tabular.TypeBool, typ)
}

func (b *Bool) RetypeTo(typ tabular.Type) (Builder, error) {
	if err := b.checkOpen(); err != nil {
		return nil, err
	}
	if !b.CanRetypeTo(typ) {
		return nil, retypeError(tabular.TypeBool, typ)
	}
	n, capacity := b.Len(), b.Cap()
	var out Builder
	switch typ.ID() {
	case tabular.IDFloat64:
		res := newFloatBuilder(b.env, b.problems, capacity, b.inferring)
		b.migrate(func(x bool) { res.push(coerce.BoolToFloat(x)) }, res.pushNull)
		out = res
	case tabular.IDMixed:
		res := newMixedBuilder(b.env, b.problems, capacity)
		b.migrate(func(x bool) { res.push(x) }, res.pushNull)
		out = res
	default:
		return nil, retypeError(tabular.TypeBool, typ)
	}
	b.abandon()
	b.env.logRetype(tabular.TypeBool, typ, n)
	return out, nil
}

func (b *Bool) migrate(value func(bool), null func()) {
	for i, v := range b.vals {
		if b.isNull(i) {
			null()
		} else {
			value(v)
		}
	}
}

// Seal packs the values into a bitmap.
func (b *Bool) Seal() (storage.Any, error) {
	vals, nulls, err := b.seal()
	if err != nil {
		return nil, err
	}
	bits := storage.NewBitmap(len(vals))
	for i, v := range vals {
		if v {
			bits.Set(i)
		}
	}
	return storage.NewBool(bits, nulls, len(vals)), nil
}
