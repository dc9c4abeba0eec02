// Package arena provides a fixed-capacity buffer with a parallel occupancy
// mask. It is the free-list that backs the splitting engine: slots are
// pre-allocated up front, "allocating" means claiming the first dead slot,
// and capacity never grows.
package arena

import "fmt"

// Buffer holds up to cap(slots) values of type T plus a live mask.
type Buffer[T any] struct {
	slots []T
	mask  []bool
}

// New returns a buffer with the given fixed capacity, all slots dead.
func New[T any](capacity int) *Buffer[T] {
	return &Buffer[T]{
		slots: make([]T, capacity),
		mask:  make([]bool, capacity),
	}
}

// Cap returns the fixed slot capacity.
func (b *Buffer[T]) Cap() int { return len(b.slots) }

// Alloc claims the first dead slot and returns its index. The slot is not
// marked live until MarkLive is called, matching split order: the new
// geometry is written first, then the mask bit flips.
//
// Running out of slots is a programming-invariant violation; callers must
// size the buffer so this cannot happen.
func (b *Buffer[T]) Alloc() int {
	for i, live := range b.mask {
		if !live {
			return i
		}
	}
	panic(fmt.Sprintf("arena: all %d slots live", len(b.slots)))
}

// At returns the value in slot i.
func (b *Buffer[T]) At(i int) T { return b.slots[i] }

// Set overwrites the value in slot i.
func (b *Buffer[T]) Set(i int, v T) { b.slots[i] = v }

// Live reports whether slot i is live.
func (b *Buffer[T]) Live(i int) bool { return b.mask[i] }

// MarkLive flips slot i's mask bit on.
func (b *Buffer[T]) MarkLive(i int) { b.mask[i] = true }

// Clear flips slot i's mask bit off. The splitting engine uses this at a
// single call site, to drop slots whose item was split to zero volume.
func (b *Buffer[T]) Clear(i int) { b.mask[i] = false }

// LiveCount returns the number of live slots.
func (b *Buffer[T]) LiveCount() int {
	n := 0
	for _, live := range b.mask {
		if live {
			n++
		}
	}
	return n
}

// Slots exposes the backing slice. Index i is meaningful only when the
// corresponding mask bit is set.
func (b *Buffer[T]) Slots() []T { return b.slots }

// Mask exposes the occupancy mask.
func (b *Buffer[T]) Mask() []bool { return b.mask }
