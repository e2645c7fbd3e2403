//go:build !vecassert

package vector

// assert is ...
func assert(bool, string) {}
