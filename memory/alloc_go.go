//go:build !malloc_cgo

package memory

// rawAlloc is ...
func rawAlloc[T any](n int) ([]T, error) {
	if !fits[T](n) {
		return nil, allocError(n)
	}
	return make([]T, n), nil
}

// rawFree is ...
func rawFree[T any]([]T) {}
