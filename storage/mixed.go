package storage

import "github.com/brimdata/tabular"

// Mixed holds host values of any kind.  A nil element is null.
type Mixed struct {
	nulls
	values []any
}

var _ Any = (*Mixed)(nil)

func NewMixed(values []any, nullmask Bitmap) *Mixed {
	return &Mixed{nulls: nulls{markNil(values, nullmask)}, values: values[:len(values):len(values)]}
}

func (*Mixed) Type() tabular.Type {
	return tabular.TypeMixed
}

func (m *Mixed) Len() int {
	return len(m.values)
}

func (m *Mixed) Value(slot int) any {
	if m.IsNull(slot) {
		return nil
	}
	return m.values[slot]
}
