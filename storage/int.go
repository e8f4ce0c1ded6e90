package storage

import "github.com/brimdata/tabular"

// Int holds integers of a fixed width.  Every value fits Typ.
type Int struct {
	nulls
	Typ    *tabular.TypeOfInt
	values []int64
}

var _ Any = (*Int)(nil)

func NewInt(typ *tabular.TypeOfInt, values []int64, nullmask Bitmap) *Int {
	return &Int{nulls: nulls{nullmask}, Typ: typ, values: values[:len(values):len(values)]}
}

func (i *Int) Type() tabular.Type {
	return i.Typ
}

func (i *Int) Len() int {
	return len(i.values)
}

func (i *Int) Item(slot int) int64 {
	return i.values[slot]
}

func (i *Int) Value(slot int) any {
	if i.IsNull(slot) {
		return nil
	}
	return i.values[slot]
}

// AppendValues appends the raw values of i, including the zero values held
// in null rows, to dst.
func (i *Int) AppendValues(dst []int64) []int64 {
	return append(dst, i.values...)
}
