package builder

import (
	"github.com/brimdata/tabular"
	"github.com/brimdata/tabular/problem"
	"github.com/brimdata/tabular/storage"
	"golang.org/x/exp/slices"
)

// buffer is the typed accumulator behind each builder.  len(vals) is the
// logical size and cap(vals) the allocated capacity; nulls always has room
// for cap(vals) bits.  Nothing outside the builder holds a reference into
// vals before the buffer is sealed.
type buffer[T any] struct {
	env      *env
	problems *problem.Aggregator
	vals     []T
	nulls    storage.Bitmap
	sealed   bool
	// inferring is set for builders owned by an Inferred builder.
	inferring bool
}

func newBuffer[T any](e *env, problems *problem.Aggregator, capacity int) buffer[T] {
	return buffer[T]{
		env:      e,
		problems: problems,
		vals:     make([]T, 0, capacity),
		nulls:    storage.NewBitmap(capacity),
	}
}

func (b *buffer[T]) Len() int {
	return len(b.vals)
}

func (b *buffer[T]) Cap() int {
	return cap(b.vals)
}

func (b *buffer[T]) Problems() *problem.Aggregator {
	return b.problems
}

func (b *buffer[T]) checkOpen() error {
	if b.sealed {
		return tabular.ContractViolation("builder used after seal")
	}
	return nil
}

// checkRoom verifies that one more value may be appended without growing.
func (b *buffer[T]) checkRoom() error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	if len(b.vals) >= cap(b.vals) {
		return tabular.ContractViolation("append without growing to a full builder (capacity %d)", cap(b.vals))
	}
	return nil
}

// ensureFreeSpaceFor grows the buffer geometrically so that n more values
// fit.
func (b *buffer[T]) ensureFreeSpaceFor(n int) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	need := len(b.vals) + n
	if need <= cap(b.vals) {
		return nil
	}
	newCap := cap(b.vals) * 2
	if floor := cap(b.vals) + b.env.config.MinGrowth; newCap < floor {
		newCap = floor
	}
	if newCap < need {
		newCap = need
	}
	b.vals = slices.Grow(b.vals, newCap-len(b.vals))
	b.nulls = b.nulls.Grow(cap(b.vals))
	return nil
}

func (b *buffer[T]) push(v T) {
	b.vals = append(b.vals, v)
}

func (b *buffer[T]) pushNull() {
	b.nulls.Set(len(b.vals))
	var zero T
	b.vals = append(b.vals, zero)
}

func (b *buffer[T]) isNull(i int) bool {
	return b.nulls.Has(i)
}

func (b *buffer[T]) AppendNulls(n int) error {
	if err := b.ensureFreeSpaceFor(n); err != nil {
		return err
	}
	for k := 0; k < n; k++ {
		b.pushNull()
	}
	return nil
}

// seal hands the buffer's contents to the caller and closes the buffer.
func (b *buffer[T]) seal() ([]T, storage.Bitmap, error) {
	if err := b.checkOpen(); err != nil {
		return nil, nil, err
	}
	b.sealed = true
	vals, nulls := b.vals, b.nulls.Trim(len(b.vals))
	b.vals, b.nulls = nil, nil
	return vals, nulls, nil
}

func (b *buffer[T]) setInferring() {
	b.inferring = true
}

// abandon closes the buffer after its rows have moved to another builder.
func (b *buffer[T]) abandon() {
	b.sealed = true
}
