package vector

// Element capabilities. A plain Go value needs none of these:
// assignment is its copy, assignment plus zeroing the source is its
// move, and dropping the value is its destruction. Types that own
// external resources, or whose operations can fail, declare that
// through the interfaces below.

// Cloner is implemented by element types whose copy is nontrivial and
// may fail. Clone must use a value receiver. Vectors of a Cloner type
// copy elements with Clone instead of plain assignment.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Initializer is implemented by element types whose value
// construction may fail. Init must use a pointer receiver; it runs on
// a zeroed slot.
type Initializer interface {
	Init() error
}

// Destroyer is implemented by element types that must release owned
// resources before their slot is recycled. Destroy must use a pointer
// receiver and cannot fail; failing destructors are outside the
// container's contract. After Destroy returns, the slot is zeroed.
type Destroyer interface {
	Destroy()
}

// NothrowMover marks a Cloner type whose plain move is always safe to
// use for relocation. NothrowMove must use a value receiver; the
// method body is never called.
type NothrowMover interface {
	NothrowMove()
}

// construct value-constructs the raw slot p. The slot is zeroed, then
// Init runs if the type declares it. On failure the slot is left raw.
func construct[T any](p *T) error {
	var zero T
	*p = zero
	if in, ok := any(p).(Initializer); ok {
		if err := in.Init(); err != nil {
			*p = zero
			return err
		}
	}
	return nil
}

// cloneInto copy-constructs *src into the raw slot dst.
func cloneInto[T any](dst, src *T) error {
	if c, ok := any(*src).(Cloner[T]); ok {
		nv, err := c.Clone()
		if err != nil {
			return err
		}
		*dst = nv
		return nil
	}
	*dst = *src
	return nil
}

// assignInto copy-assigns *src over the live slot dst. For Cloner
// types the clone is taken first, so a failure leaves dst untouched.
func assignInto[T any](dst, src *T) error {
	if c, ok := any(*src).(Cloner[T]); ok {
		nv, err := c.Clone()
		if err != nil {
			return err
		}
		destroy(dst)
		*dst = nv
		return nil
	}
	*dst = *src
	return nil
}

// moveInto transfers *src into dst and leaves the source slot raw.
// Never fails.
func moveInto[T any](dst, src *T) {
	var zero T
	*dst = *src
	*src = zero
}

// destroy ends the lifetime of the value at p and leaves the slot raw.
// Zeroing the slot keeps stale slots from pinning references.
func destroy[T any](p *T) {
	if d, ok := any(p).(Destroyer); ok {
		d.Destroy()
	}
	var zero T
	*p = zero
}

// relocateByClone reports whether relocation between blocks must copy
// instead of move. Plain moves never fail, so they are the default;
// a Cloner type is relocated by Clone unless it declares NothrowMover,
// keeping the source block whole when a clone fails mid-relocation.
func relocateByClone[T any]() bool {
	var zero T
	if _, ok := any(zero).(Cloner[T]); !ok {
		return false
	}
	if _, ok := any(zero).(NothrowMover); ok {
		return false
	}
	return true
}

// moveRange relocates live values from src into the raw slots of dst.
func moveRange[T any](src, dst []T) {
	for i := range src {
		moveInto(&dst[i], &src[i])
	}
}

// cloneRange copy-constructs src into the raw slots of dst. On failure
// the clones made so far are destroyed and src is untouched.
func cloneRange[T any](src, dst []T) error {
	for i := range src {
		if err := cloneInto(&dst[i], &src[i]); err != nil {
			destroyRange(dst[:i])
			return err
		}
	}
	return nil
}

// constructRange value-constructs every slot of s. On failure the
// elements constructed so far are destroyed and s is left raw.
func constructRange[T any](s []T) error {
	for i := range s {
		if err := construct(&s[i]); err != nil {
			destroyRange(s[:i])
			return err
		}
	}
	return nil
}

// destroyRange is ...
func destroyRange[T any](s []T) {
	for i := range s {
		destroy(&s[i])
	}
}

// relocate transfers the live values in src into the raw slots of dst.
// Clone relocation destroys the originals only after every clone
// succeeded, so a failure reports back with src intact.
func relocate[T any](src, dst []T) error {
	if !relocateByClone[T]() {
		moveRange(src, dst)
		return nil
	}
	if err := cloneRange(src, dst); err != nil {
		return err
	}
	destroyRange(src)
	return nil
}
