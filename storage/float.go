package storage

import "github.com/brimdata/tabular"

type Float struct {
	nulls
	values []float64
}

var _ Any = (*Float)(nil)

func NewFloat(values []float64, nullmask Bitmap) *Float {
	return &Float{nulls: nulls{nullmask}, values: values[:len(values):len(values)]}
}

func (*Float) Type() tabular.Type {
	return tabular.TypeFloat64
}

func (f *Float) Len() int {
	return len(f.values)
}

func (f *Float) Item(slot int) float64 {
	return f.values[slot]
}

func (f *Float) Value(slot int) any {
	if f.IsNull(slot) {
		return nil
	}
	return f.values[slot]
}

// AppendValues appends the raw values of f, including the zero values held
// in null rows, to dst.
func (f *Float) AppendValues(dst []float64) []float64 {
	return append(dst, f.values...)
}
