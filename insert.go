package vector

import "fmt"

// Emplace constructs a new element in place before position i, with i
// in [0, size], and returns its address. ctor receives the zeroed
// destination slot.
//
// With room available, the new value is constructed into a temporary
// before any element moves, so a failed construction changes nothing;
// the tail then shifts one slot right and the value moves into place.
// At capacity, the vector grows through the same construct-first path
// as EmplaceBack, keeping the strong guarantee.
func (v *Vector[T]) Emplace(i int, ctor func(*T) error) (*T, error) {
	assert(0 <= i && i <= v.size, "position out of range")
	assert(ctor != nil, "nil constructor")
	if v.size == v.Capacity() {
		return v.growInsert(i, ctor)
	}

	var tmp T
	if err := ctor(&tmp); err != nil {
		return nil, fmt.Errorf("vector: emplace: %w", err)
	}
	last := v.size
	if i == last {
		moveInto(v.data.At(last), &tmp)
	} else {
		// Extend by one with the current last element, then shift the
		// range [i, last-1) right to left to avoid overlap corruption.
		moveInto(v.data.At(last), v.data.At(last-1))
		for j := last - 1; j > i; j-- {
			moveInto(v.data.At(j), v.data.At(j-1))
		}
		moveInto(v.data.At(i), &tmp)
	}
	v.size++
	return v.data.At(i), nil
}

// Insert inserts a copy of value before position i and returns the
// address of the new element. Same guarantees as Emplace.
func (v *Vector[T]) Insert(i int, value T) (*T, error) {
	return v.Emplace(i, func(p *T) error { return cloneInto(p, &value) })
}

// Erase removes the element at position i, with i in [0, size),
// shifting every later element one slot left. Moves cannot fail, so
// Erase cannot either. Addresses at and after i are invalidated.
func (v *Vector[T]) Erase(i int) {
	assert(0 <= i && i < v.size, "position out of range")
	destroy(v.data.At(i))
	for j := i; j < v.size-1; j++ {
		moveInto(v.data.At(j), v.data.At(j+1))
	}
	v.size--
}
