//go:build vecassert

package memory

// assert is ...
func assert(ok bool, msg string) {
	if !ok {
		panic("memory: " + msg)
	}
}
