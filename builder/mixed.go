package builder

import (
	"github.com/brimdata/tabular"
	"github.com/brimdata/tabular/problem"
	"github.com/brimdata/tabular/storage"
)

// Mixed builds a column of arbitrary host values.  It accepts every value
// and cannot be retyped.
type Mixed struct {
	buffer[any]
}

var _ Builder = (*Mixed)(nil)

func newMixedBuilder(e *env, problems *problem.Aggregator, capacity int) *Mixed {
	return &Mixed{buffer: newBuffer[any](e, problems, capacity)}
}

func (*Mixed) Type() tabular.Type {
	return tabular.TypeMixed
}

func (*Mixed) Accepts(any) bool {
	return true
}

func (b *Mixed) AppendNoGrow(v any) error {
	if err := b.checkRoom(); err != nil {
		return err
	}
	if v == nil {
		b.pushNull()
	} else {
		b.push(v)
	}
	return nil
}

func (b *Mixed) Append(v any) error {
	if err := b.ensureFreeSpaceFor(1); err != nil {
		return err
	}
	return b.AppendNoGrow(v)
}

// AppendBulkStorage appends the boxed rows of a storage of any type.
func (b *Mixed) AppendBulkStorage(s storage.Any) error {
	b.env.logBulk(tabular.TypeMixed, s)
	n := s.Len()
	if err := b.ensureFreeSpaceFor(n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if v := s.Value(i); v == nil {
			b.pushNull()
		} else {
			b.push(v)
		}
	}
	return nil
}

func (*Mixed) CanRetypeTo(tabular.Type) bool {
	return false
}

func (b *Mixed) RetypeTo(typ tabular.Type) (Builder, error) {
	return nil, retypeError(tabular.TypeMixed, typ)
}

func (b *Mixed) Seal() (storage.Any, error) {
	vals, nulls, err := b.seal()
	if err != nil {
		return nil, err
	}
	return storage.NewMixed(vals, nulls), nil
}
