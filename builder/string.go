package builder

import (
	"github.com/brimdata/tabular"
	"github.com/brimdata/tabular/problem"
	"github.com/brimdata/tabular/storage"
)

type String struct {
	buffer[string]
}

var _ Builder = (*String)(nil)

func newStringBuilder(e *env, problems *problem.Aggregator, capacity int) *String {
	return &String{buffer: newBuffer[string](e, problems, capacity)}
}

func (*String) Type() tabular.Type {
	return tabular.TypeString
}

func (b *String) Accepts(v any) bool {
	_, ok := b.env.host.AsString(v)
	return ok
}

func (b *String) AppendNoGrow(v any) error {
	if err := b.checkRoom(); err != nil {
		return err
	}
	if v == nil {
		b.pushNull()
		return nil
	}
	s, ok := b.env.host.AsString(v)
	if !ok {
		return &tabular.ValueTypeMismatchError{Expected: tabular.TypeString, Value: v}
	}
	b.push(s)
	return nil
}

func (b *String) Append(v any) error {
	if err := b.ensureFreeSpaceFor(1); err != nil {
		return err
	}
	return b.AppendNoGrow(v)
}

func (b *String) AppendString(s string) error {
	if err := b.ensureFreeSpaceFor(1); err != nil {
		return err
	}
	b.push(s)
	return nil
}

func (b *String) AppendBulkStorage(s storage.Any) error {
	src, ok := s.(*storage.String)
	if !ok {
		return mismatch(s, tabular.TypeString)
	}
	b.env.logBulk(tabular.TypeString, s)
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

func (b *String) CanRetypeTo(typ tabular.Type) bool {
	return tabular.CanWiden(tabular.TypeString, typ)
}

func (b *String) RetypeTo(typ tabular.Type) (Builder, error) {
	if err := b.checkOpen(); err != nil {
		return nil, err
	}
	if !b.CanRetypeTo(typ) {
		return nil, retypeError(tabular.TypeString, typ)
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
	b.env.logRetype(tabular.TypeString, typ, n)
	return res, nil
}

func (b *String) Seal() (storage.Any, error) {
	vals, nulls, err := b.seal()
	if err != nil {
		return nil, err
	}
	return storage.NewString(vals, nulls), nil
}
