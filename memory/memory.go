// Package memory provides fixed-capacity raw element storage. A Block
// owns a contiguous region of element slots and hands out slot
// addresses; it never constructs, destroys or inspects the values held
// in those slots. Tracking which slots hold live values is entirely
// the owner's job.
package memory

import (
	"errors"
	"fmt"
	"unsafe"
)

// ErrAllocation is ...
var ErrAllocation = errors.New("memory: allocation failed")

// maxBytes caps the byte size of a single region. Requests beyond it
// fail with ErrAllocation instead of aborting inside the runtime
// allocator.
const maxBytes uint64 = 1 << 47

// Block is a handle to capacity uninitialized element slots. The zero
// Block and the nil *Block are both the empty block. A Block must not
// be duplicated; ownership moves with MoveFrom or Swap.
type Block[T any] struct {
	noCopy noCopy
	slots  []T
}

// Alloc obtains a block of capacity raw slots. A capacity of zero is
// legal, allocates nothing and returns the empty block. A request the
// system cannot satisfy returns an error wrapping ErrAllocation and
// leaves no partial state.
func Alloc[T any](capacity int) (*Block[T], error) {
	assert(capacity >= 0, "negative capacity")
	if capacity == 0 {
		return &Block[T]{}, nil
	}
	s, err := rawAlloc[T](capacity)
	if err != nil {
		return nil, err
	}
	return &Block[T]{slots: s}, nil
}

// Capacity is ...
func (b *Block[T]) Capacity() int {
	if b == nil {
		return 0
	}
	return len(b.slots)
}

// At returns the address of slot i. The slot may be raw; dereferencing
// is only meaningful once the owner has constructed a value there.
func (b *Block[T]) At(i int) *T {
	assert(b != nil && 0 <= i && i < len(b.slots), "slot out of capacity")
	return &b.slots[i]
}

// Slice returns a window over slots [i, j) for bulk construction and
// relocation. The window aliases the region; it is invalidated by
// Release, MoveFrom and Swap.
func (b *Block[T]) Slice(i, j int) []T {
	if b == nil {
		assert(i == 0 && j == 0, "slice out of capacity")
		return nil
	}
	assert(0 <= i && i <= j && j <= len(b.slots), "slice out of capacity")
	return b.slots[i:j]
}

// Swap exchanges regions and capacities with o in O(1).
func (b *Block[T]) Swap(o *Block[T]) {
	b.slots, o.slots = o.slots, b.slots
}

// MoveFrom releases the receiver's own region and takes ownership of
// o's region and capacity, leaving o empty. Never fails.
func (b *Block[T]) MoveFrom(o *Block[T]) {
	if b == o {
		return
	}
	rawFree(b.slots)
	b.slots = o.slots
	o.slots = nil
}

// Release returns the region to the system and leaves the block empty.
// Values still sitting in the slots are not destroyed; the owner must
// have dealt with them first. Safe on the nil or empty block.
func (b *Block[T]) Release() {
	if b == nil {
		return
	}
	rawFree(b.slots)
	b.slots = nil
}

// fits reports whether a region of n slots of T stays under maxBytes.
func fits[T any](n int) bool {
	var zero T
	size := uint64(unsafe.Sizeof(zero))
	if size == 0 {
		return true
	}
	return uint64(n) <= maxBytes/size
}

func allocError(n int) error {
	return fmt.Errorf("memory: cannot allocate %d slots: %w", n, ErrAllocation)
}

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
