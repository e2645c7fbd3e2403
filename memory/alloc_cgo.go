//go:build malloc_cgo

package memory

// #include <stdlib.h>
import "C"

import "unsafe"

// The cgo backend hands out genuinely uninitialized memory from the C
// heap. The Go collector does not scan it, so it is only suitable for
// element types that contain no Go pointers.

func cmalloc(n uintptr) unsafe.Pointer {
	return C.malloc(C.size_t(n))
}

func cfree(p unsafe.Pointer) {
	C.free(p)
}

// rawAlloc is ...
func rawAlloc[T any](n int) ([]T, error) {
	if !fits[T](n) {
		return nil, allocError(n)
	}
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return make([]T, n), nil
	}
	p := cmalloc(uintptr(n) * size)
	if p == nil {
		return nil, allocError(n)
	}
	return unsafe.Slice((*T)(p), n), nil
}

// rawFree is ...
func rawFree[T any](s []T) {
	var zero T
	if cap(s) == 0 || unsafe.Sizeof(zero) == 0 {
		return
	}
	cfree(unsafe.Pointer(unsafe.SliceData(s)))
}
