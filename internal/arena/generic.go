package arena

import "unsafe"

// New constructs a T in place on the arena and returns a non-owning pointer
// to it. The pointer's validity is tied to the arena: it must not be
// dereferenced after the arena is reset.
func New[T any](a *Arena, value T) *T {
	p := (*T)(a.Allocate(int(unsafe.Sizeof(value)), int(unsafe.Alignof(value))))
	*p = value
	return p
}

// NewSlice allocates storage for n contiguous Ts and returns a slice over
// it, all zero-valued.
func NewSlice[T any](a *Arena, n int) []T {
	if n == 0 {
		return nil
	}
	var zero T
	p := (*T)(a.Allocate(int(unsafe.Sizeof(zero))*n, int(unsafe.Alignof(zero))))
	return unsafe.Slice(p, n)
}
