package storage

import "github.com/brimdata/tabular"

type Bool struct {
	nulls
	values Bitmap
	len    int
}

var _ Any = (*Bool)(nil)

func NewBool(values, nullmask Bitmap, n int) *Bool {
	return &Bool{nulls: nulls{nullmask}, values: values, len: n}
}

func (*Bool) Type() tabular.Type {
	return tabular.TypeBool
}

func (b *Bool) Len() int {
	return b.len
}

func (b *Bool) Item(i int) bool {
	return b.values.Has(i)
}

func (b *Bool) Value(i int) any {
	if b.IsNull(i) {
		return nil
	}
	return b.Item(i)
}
