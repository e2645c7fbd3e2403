package memory

import (
	"errors"
	"math"
	"testing"
)

func TestAlloc(t *testing.T) {
	b, err := Alloc[byte](1024)
	if err != nil {
		t.Fatal(err)
	}
	if b.Capacity() != 1024 {
		t.Errorf("capacity error: %v", b.Capacity())
	}
	b.Release()
	if b.Capacity() != 0 {
		t.Errorf("capacity after release: %v", b.Capacity())
	}
}

func TestAllocEmpty(t *testing.T) {
	b, err := Alloc[int](0)
	if err != nil {
		t.Fatal(err)
	}
	if b.Capacity() != 0 {
		t.Errorf("capacity error: %v", b.Capacity())
	}
	b.Release()

	nb := (*Block[int])(nil)
	if nb.Capacity() != 0 {
		t.Errorf("nil block capacity error: %v", nb.Capacity())
	}
	nb.Release()
}

func TestAllocTooLarge(t *testing.T) {
	b, err := Alloc[int64](math.MaxInt / 4)
	if !errors.Is(err, ErrAllocation) {
		t.Errorf("expected ErrAllocation, got: %v", err)
	}
	if b != nil {
		t.Errorf("partial state after failed allocation")
	}
}

func TestMoveFrom(t *testing.T) {
	b, err := Alloc[int](8)
	if err != nil {
		t.Fatal(err)
	}
	o, err := Alloc[int](4)
	if err != nil {
		t.Fatal(err)
	}
	*o.At(2) = 7

	b.MoveFrom(o)
	if b.Capacity() != 4 {
		t.Errorf("capacity error: %v", b.Capacity())
	}
	if o.Capacity() != 0 {
		t.Errorf("source not empty: %v", o.Capacity())
	}
	if *b.At(2) != 7 {
		t.Errorf("slot contents not transferred")
	}
	b.Release()
}

func TestSwap(t *testing.T) {
	b, err := Alloc[int](2)
	if err != nil {
		t.Fatal(err)
	}
	o, err := Alloc[int](6)
	if err != nil {
		t.Fatal(err)
	}
	*b.At(0) = 1
	*o.At(0) = 2

	b.Swap(o)
	if b.Capacity() != 6 || o.Capacity() != 2 {
		t.Errorf("capacity error: %v, %v", b.Capacity(), o.Capacity())
	}
	if *b.At(0) != 2 || *o.At(0) != 1 {
		t.Errorf("slot contents not exchanged")
	}
	b.Release()
	o.Release()
}

func TestSlice(t *testing.T) {
	b, err := Alloc[int](8)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Release()

	w := b.Slice(2, 5)
	if len(w) != 3 {
		t.Fatalf("window length error: %v", len(w))
	}
	w[0] = 9
	if *b.At(2) != 9 {
		t.Errorf("window does not alias the region")
	}
}
