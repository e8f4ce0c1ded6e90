package builder

import (
	"errors"

	"github.com/brimdata/tabular"
	"github.com/brimdata/tabular/host"
	"github.com/brimdata/tabular/problem"
	"github.com/brimdata/tabular/storage"
)

// Inferred is a builder whose type is picked by the first non-null value
// appended and widened each time a value does not fit.  Nulls appended
// before the first value are kept as pending rows.  An Inferred that sees
// only nulls seals to a Mixed storage.
type Inferred struct {
	env          *env
	problems     *problem.Aggregator
	capacity     int
	pendingNulls int
	current      Builder
	sealed       bool
}

var _ Builder = (*Inferred)(nil)

// Type returns the current type, or Mixed if no value has been appended.
func (b *Inferred) Type() tabular.Type {
	if b.current == nil {
		return tabular.TypeMixed
	}
	return b.current.Type()
}

func (b *Inferred) Len() int {
	if b.current == nil {
		return b.pendingNulls
	}
	return b.current.Len()
}

func (b *Inferred) Cap() int {
	if b.current == nil {
		return b.capacity
	}
	return b.current.Cap()
}

func (b *Inferred) Problems() *problem.Aggregator {
	return b.problems
}

// Accepts returns true for any value before the first non-null value and
// thereafter whatever the current builder accepts.  Append widens to take
// values that are not accepted; AppendNoGrow does not.
func (b *Inferred) Accepts(v any) bool {
	if b.current == nil {
		return true
	}
	return b.current.Accepts(v)
}

func (b *Inferred) checkOpen() error {
	if b.sealed {
		return tabular.ContractViolation("builder used after seal")
	}
	return nil
}

// AppendNoGrow appends v if the current builder accepts it without
// widening or growing.
func (b *Inferred) AppendNoGrow(v any) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	if b.current == nil {
		if b.pendingNulls >= b.capacity {
			return tabular.ContractViolation("append without growing to a full builder (capacity %d)", b.capacity)
		}
		if v == nil {
			b.pendingNulls++
			return nil
		}
		if err := b.start(b.valueType(v)); err != nil {
			return err
		}
	}
	return b.current.AppendNoGrow(v)
}

func (b *Inferred) Append(v any) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	if b.current == nil {
		if v == nil {
			b.pendingNulls++
			if b.pendingNulls > b.capacity {
				b.capacity = b.pendingNulls
			}
			return nil
		}
		if err := b.start(b.valueType(v)); err != nil {
			return err
		}
	}
	if v != nil && !b.current.Accepts(v) {
		if err := b.widen(b.valueType(v)); err != nil {
			return err
		}
	}
	return b.current.Append(v)
}

func (b *Inferred) AppendNulls(n int) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	if b.current != nil {
		return b.current.AppendNulls(n)
	}
	b.pendingNulls += n
	if b.pendingNulls > b.capacity {
		b.capacity = b.pendingNulls
	}
	return nil
}

// AppendBulkStorage appends the rows of s, widening first if the current
// type cannot hold s's type.
func (b *Inferred) AppendBulkStorage(s storage.Any) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	if b.current == nil {
		typ := s.Type()
		if tabular.IsInteger(typ.ID()) {
			typ = tabular.TypeInt64
		}
		if err := b.start(typ); err != nil {
			return err
		}
	}
	err := b.current.AppendBulkStorage(s)
	if !errors.Is(err, tabular.ErrStorageTypeMismatch) && !errors.Is(err, tabular.ErrValueTypeMismatch) {
		return err
	}
	if err := b.widen(s.Type()); err != nil {
		return err
	}
	return b.current.AppendBulkStorage(s)
}

// valueType is the type an Inferred would pick for v as its first value.
func (b *Inferred) valueType(v any) tabular.Type {
	return host.TypeOf(b.env.host, v)
}

func (b *Inferred) start(typ tabular.Type) error {
	capacity := b.capacity
	if capacity < b.pendingNulls+1 {
		capacity = b.pendingNulls + 1
	}
	current, err := b.env.newBuilder(typ, capacity, b.problems, true)
	if err != nil {
		return err
	}
	if err := current.AppendNulls(b.pendingNulls); err != nil {
		return err
	}
	b.pendingNulls = 0
	b.current = current
	return nil
}

// widen retypes the current builder to the common type of its type and
// typ.  Booleans mix with nothing but Mixed, and a builder that cannot
// reach the common type without loss goes to Mixed.
func (b *Inferred) widen(typ tabular.Type) error {
	from := b.current.Type()
	target := tabular.Common(from, typ)
	if target == from || from == tabular.TypeBool || !b.current.CanRetypeTo(target) {
		target = tabular.TypeMixed
	}
	next, err := b.current.RetypeTo(target)
	if err != nil {
		return err
	}
	next.(interface{ setInferring() }).setInferring()
	b.current = next
	return nil
}

func (b *Inferred) CanRetypeTo(typ tabular.Type) bool {
	if b.current == nil {
		return true
	}
	return b.current.CanRetypeTo(typ)
}

// RetypeTo returns a builder of type typ holding the rows appended so far.
func (b *Inferred) RetypeTo(typ tabular.Type) (Builder, error) {
	if err := b.checkOpen(); err != nil {
		return nil, err
	}
	var out Builder
	if b.current == nil {
		var err error
		out, err = b.env.newBuilder(typ, b.capacity, b.problems, false)
		if err != nil {
			return nil, err
		}
		if err := out.AppendNulls(b.pendingNulls); err != nil {
			return nil, err
		}
	} else {
		var err error
		if out, err = b.current.RetypeTo(typ); err != nil {
			return nil, err
		}
	}
	b.sealed = true
	return out, nil
}

func (b *Inferred) Seal() (storage.Any, error) {
	if err := b.checkOpen(); err != nil {
		return nil, err
	}
	b.sealed = true
	if b.current == nil {
		return storage.NewAllNull(tabular.TypeMixed, b.pendingNulls), nil
	}
	return b.current.Seal()
}
