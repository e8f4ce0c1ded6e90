package storage

import (
	"github.com/brimdata/tabular"
	"github.com/shopspring/decimal"
)

type Decimal struct {
	nulls
	values []decimal.Decimal
}

var _ Any = (*Decimal)(nil)

func NewDecimal(values []decimal.Decimal, nullmask Bitmap) *Decimal {
	return &Decimal{nulls: nulls{nullmask}, values: values[:len(values):len(values)]}
}

func (*Decimal) Type() tabular.Type {
	return tabular.TypeBigDecimal
}

func (d *Decimal) Len() int {
	return len(d.values)
}

func (d *Decimal) Item(slot int) decimal.Decimal {
	return d.values[slot]
}

func (d *Decimal) Value(slot int) any {
	if d.IsNull(slot) {
		return nil
	}
	return d.values[slot]
}
