package storage

import "github.com/brimdata/tabular"

type String struct {
	nulls
	values []string
}

var _ Any = (*String)(nil)

func NewString(values []string, nullmask Bitmap) *String {
	return &String{nulls: nulls{nullmask}, values: values[:len(values):len(values)]}
}

func (*String) Type() tabular.Type {
	return tabular.TypeString
}

func (s *String) Len() int {
	return len(s.values)
}

func (s *String) Item(slot int) string {
	return s.values[slot]
}

func (s *String) Value(slot int) any {
	if s.IsNull(slot) {
		return nil
	}
	return s.values[slot]
}
