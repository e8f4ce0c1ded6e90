package storage

import "math/bits"

// Bitmap is a bitset indexed by row.  Bits beyond the end of the slice
// read as zero.
type Bitmap []uint64

// NewBitmap returns a zeroed bitmap with room for n bits.
func NewBitmap(n int) Bitmap {
	return make(Bitmap, (n+63)/64)
}

// Cap returns the number of bits b can hold without growing.
func (b Bitmap) Cap() int {
	return len(b) * 64
}

func (b Bitmap) Has(i int) bool {
	off := i >> 6
	if i < 0 || off >= len(b) {
		return false
	}
	return b[off]&(1<<(uint(i)&63)) != 0
}

// Set sets bit i, which must be less than b.Cap().
func (b Bitmap) Set(i int) {
	b[i>>6] |= 1 << (uint(i) & 63)
}

// SetRange sets bits [from, to).
func (b Bitmap) SetRange(from, to int) {
	for i := from; i < to; i++ {
		b.Set(i)
	}
}

// Grow returns a bitmap with the contents of b and room for at least n
// bits.
func (b Bitmap) Grow(n int) Bitmap {
	words := (n + 63) / 64
	if words <= len(b) {
		return b
	}
	out := make(Bitmap, words)
	copy(out, b)
	return out
}

// Count returns the number of set bits in [0, n).
func (b Bitmap) Count(n int) int {
	var c int
	full := n >> 6
	for k := 0; k < full && k < len(b); k++ {
		c += bits.OnesCount64(b[k])
	}
	if rem := uint(n) & 63; rem != 0 && full < len(b) {
		c += bits.OnesCount64(b[full] & (1<<rem - 1))
	}
	return c
}

// Trim returns a copy of the first n bits of b.
func (b Bitmap) Trim(n int) Bitmap {
	out := NewBitmap(n)
	copy(out, b)
	if rem := uint(n) & 63; rem != 0 && len(out) > 0 {
		out[len(out)-1] &= 1<<rem - 1
	}
	return out
}
