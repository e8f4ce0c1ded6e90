package storage

import (
	"math/big"

	"github.com/brimdata/tabular"
)

type BigInt struct {
	nulls
	values []*big.Int
}

var _ Any = (*BigInt)(nil)

// NewBigInt returns a storage owning values.  A nil element is null even if
// its bit is clear in nullmask.
func NewBigInt(values []*big.Int, nullmask Bitmap) *BigInt {
	return &BigInt{nulls: nulls{markNil(values, nullmask)}, values: values[:len(values):len(values)]}
}

func (*BigInt) Type() tabular.Type {
	return tabular.TypeBigInt
}

func (b *BigInt) Len() int {
	return len(b.values)
}

// Item returns a copy of the value in slot, or nil if it is null.
func (b *BigInt) Item(slot int) *big.Int {
	if b.IsNull(slot) {
		return nil
	}
	return new(big.Int).Set(b.values[slot])
}

func (b *BigInt) Value(slot int) any {
	if v := b.Item(slot); v != nil {
		return v
	}
	return nil
}
