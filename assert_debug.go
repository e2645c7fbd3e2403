//go:build vecassert

package vector

// assert is ...
func assert(ok bool, msg string) {
	if !ok {
		panic("vector: " + msg)
	}
}
