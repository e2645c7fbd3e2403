// Package vector implements a contiguous growable sequence container
// over raw storage blocks. The container tracks how many slots of its
// block hold live elements; slots past that count are raw memory that
// is only ever written by an explicit construction step. Failure
// behavior is documented per operation: strong operations leave the
// vector exactly as it was, basic operations leave it internally
// consistent but possibly changed.
//
// A Vector is not synchronized. Concurrent use of one instance must be
// serialized by the caller.
package vector

import (
	"fmt"
	"iter"

	"github.com/imgk/vector-go/memory"
)

// Vector is ...
//
// The zero Vector is an empty container ready to use. Vectors are
// handled by pointer; ownership of the storage moves with the pointer,
// with MoveFrom, or with Swap. Use Clone for a deep copy.
type Vector[T any] struct {
	data *memory.Block[T]
	size int
}

// New returns an empty vector. No storage is allocated.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewN returns a vector of n value-constructed elements with capacity
// exactly n. If construction fails partway, the elements built so far
// are destroyed and the block released before the error is returned;
// nothing leaks and no vector existed.
func NewN[T any](n int) (*Vector[T], error) {
	assert(n >= 0, "negative length")
	b, err := memory.Alloc[T](n)
	if err != nil {
		return nil, err
	}
	if err := constructRange(b.Slice(0, n)); err != nil {
		b.Release()
		return nil, fmt.Errorf("vector: construct: %w", err)
	}
	return &Vector[T]{data: b, size: n}, nil
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of allocated slots.
func (v *Vector[T]) Capacity() int {
	return v.data.Capacity()
}

// live is the window of live slots [0, size).
func (v *Vector[T]) live() []T {
	return v.data.Slice(0, v.size)
}

// reset destroys all live elements and releases the storage.
func (v *Vector[T]) reset() {
	destroyRange(v.live())
	v.data.Release()
	v.data = nil
	v.size = 0
}

// Clone returns an independent deep copy with capacity equal to the
// source's size. On failure the clones made so far are destroyed and
// the new block released; the source is never touched.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	b, err := memory.Alloc[T](v.size)
	if err != nil {
		return nil, err
	}
	if err := cloneRange(v.live(), b.Slice(0, v.size)); err != nil {
		b.Release()
		return nil, fmt.Errorf("vector: clone: %w", err)
	}
	return &Vector[T]{data: b, size: v.size}, nil
}

// MoveFrom discards the receiver's contents and takes over rhs's
// storage and size in O(1), leaving rhs empty. Never fails and never
// touches individual elements of rhs.
func (v *Vector[T]) MoveFrom(rhs *Vector[T]) {
	if v == rhs {
		return
	}
	v.reset()
	v.data = rhs.data
	v.size = rhs.size
	rhs.data = nil
	rhs.size = 0
}

// CopyFrom copy-assigns rhs's elements over the receiver.
//
// When rhs does not fit in the current capacity, a full temporary copy
// is built first and swapped in, so a failure leaves the receiver
// unchanged. When rhs fits, the assignment happens in place: excess
// trailing elements are destroyed, the overlapping prefix is assigned
// element by element, and remaining elements are clone-constructed
// into the tail. A failure in the in-place path leaves the vector
// internally consistent but partially updated (basic guarantee only).
func (v *Vector[T]) CopyFrom(rhs *Vector[T]) error {
	if v == rhs {
		return nil
	}
	if rhs.size > v.Capacity() {
		tmp, err := rhs.Clone()
		if err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.reset()
		return nil
	}
	if v.size > rhs.size {
		destroyRange(v.data.Slice(rhs.size, v.size))
		v.size = rhs.size
	}
	for i := 0; i < min(v.size, rhs.size); i++ {
		if err := assignInto(v.data.At(i), rhs.data.At(i)); err != nil {
			return fmt.Errorf("vector: assign: %w", err)
		}
	}
	if v.size < rhs.size {
		if err := cloneRange(rhs.data.Slice(v.size, rhs.size), v.data.Slice(v.size, rhs.size)); err != nil {
			return fmt.Errorf("vector: assign: %w", err)
		}
		v.size = rhs.size
	}
	return nil
}

// Reserve grows the capacity to exactly capacity slots, relocating the
// live elements into the new block. It is a no-op when the vector
// already has that capacity. Strong guarantee: on failure the original
// block and its elements are untouched and the new block is discarded.
// Reserve never shrinks.
func (v *Vector[T]) Reserve(capacity int) error {
	if capacity <= v.Capacity() {
		return nil
	}
	nb, err := memory.Alloc[T](capacity)
	if err != nil {
		return err
	}
	if err := relocate(v.live(), nb.Slice(0, v.size)); err != nil {
		nb.Release()
		return fmt.Errorf("vector: relocate: %w", err)
	}
	v.data.Release()
	v.data = nb
	return nil
}

// Resize grows or shrinks the vector to exactly n live elements.
// Shrinking destroys the trailing elements and never reduces capacity.
// Growing reserves capacity n and value-constructs the new tail; if
// tail construction fails the new elements are destroyed again but the
// capacity may already have grown (basic guarantee). Callers needing
// atomicity must not rely on Resize for it.
func (v *Vector[T]) Resize(n int) error {
	assert(n >= 0, "negative size")
	switch {
	case n == v.size:
		return nil
	case n < v.size:
		destroyRange(v.data.Slice(n, v.size))
		v.size = n
		return nil
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	if err := constructRange(v.data.Slice(v.size, n)); err != nil {
		return fmt.Errorf("vector: construct: %w", err)
	}
	v.size = n
	return nil
}

// PushBack appends a copy of value and returns the address of the new
// element. Amortized O(1); same guarantees as EmplaceBack.
func (v *Vector[T]) PushBack(value T) (*T, error) {
	return v.EmplaceBack(func(p *T) error { return cloneInto(p, &value) })
}

// EmplaceBack constructs a new element in place at the end and returns
// its address. ctor receives the zeroed destination slot.
//
// When the vector is full, capacity doubles (one slot when empty) and
// the new element is constructed into the new block before any
// existing element is relocated, so a failure at any step leaves the
// original storage completely untouched (strong guarantee).
func (v *Vector[T]) EmplaceBack(ctor func(*T) error) (*T, error) {
	assert(ctor != nil, "nil constructor")
	if v.size == v.Capacity() {
		return v.growInsert(v.size, ctor)
	}
	slot := v.data.At(v.size)
	if err := runCtor(slot, ctor); err != nil {
		return nil, fmt.Errorf("vector: emplace: %w", err)
	}
	v.size++
	return slot, nil
}

// PopBack destroys the last element. The vector must not be empty.
func (v *Vector[T]) PopBack() {
	assert(v.size > 0, "pop on empty vector")
	v.size--
	destroy(v.data.At(v.size))
}

// At returns the address of element i for reading or writing. Any
// operation that reallocates invalidates previously returned
// addresses.
func (v *Vector[T]) At(i int) *T {
	assert(0 <= i && i < v.size, "index out of range")
	return v.data.At(i)
}

// Slice returns the window over the live elements [0, size). The
// window aliases the storage; any reallocating operation invalidates
// it, and Erase or PopBack leave it covering stale trailing slots.
func (v *Vector[T]) Slice() []T {
	return v.live()
}

// All iterates over index and element address of every live element.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data.At(i)) {
				return
			}
		}
	}
}

// Swap exchanges contents with rhs in O(1).
func (v *Vector[T]) Swap(rhs *Vector[T]) {
	v.data, rhs.data = rhs.data, v.data
	v.size, rhs.size = rhs.size, v.size
}

// runCtor zeroes the raw slot p and runs ctor on it. On failure the
// slot is returned to the raw state.
func runCtor[T any](p *T, ctor func(*T) error) error {
	var zero T
	*p = zero
	if err := ctor(p); err != nil {
		*p = zero
		return err
	}
	return nil
}

// growInsert allocates a doubled block, constructs the new element at
// index at in it, relocates the surrounding live elements around that
// index and commits. No original element is destroyed until the new
// element and both relocated ranges are fully constructed, so any
// failure leaves the old block exactly as it was (strong guarantee).
func (v *Vector[T]) growInsert(at int, ctor func(*T) error) (*T, error) {
	capacity := v.size * 2
	if capacity == 0 {
		capacity = 1
	}
	nb, err := memory.Alloc[T](capacity)
	if err != nil {
		return nil, err
	}
	slot := nb.At(at)
	if err := runCtor(slot, ctor); err != nil {
		nb.Release()
		return nil, fmt.Errorf("vector: emplace: %w", err)
	}

	head := v.data.Slice(0, at)
	tail := v.data.Slice(at, v.size)
	if relocateByClone[T]() {
		if err := cloneRange(head, nb.Slice(0, at)); err != nil {
			destroy(slot)
			nb.Release()
			return nil, fmt.Errorf("vector: relocate: %w", err)
		}
		if err := cloneRange(tail, nb.Slice(at+1, v.size+1)); err != nil {
			destroyRange(nb.Slice(0, at))
			destroy(slot)
			nb.Release()
			return nil, fmt.Errorf("vector: relocate: %w", err)
		}
		destroyRange(v.live())
	} else {
		moveRange(head, nb.Slice(0, at))
		moveRange(tail, nb.Slice(at+1, v.size+1))
	}
	v.data.Release()
	v.data = nb
	v.size++
	return slot, nil
}
