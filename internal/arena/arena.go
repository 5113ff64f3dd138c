// Package arena implements a bump allocator used to hand out storage for
// syntax nodes and other front-end-lifetime values.
//
// An Arena never moves or frees individual allocations; it only grows, and
// everything it owns is released at once when the arena itself is dropped.
// Because of this, only trivially-destructible values (no owned file
// handles, no finalizers relied upon) may be allocated from one.
package arena

import (
	"unsafe"
)

// defaultBlockCapacity is the minimum size of a newly linked block, chosen
// to keep block-chain growth logarithmic for typical front-end inputs.
const defaultBlockCapacity = 32 << 20 // 32 MiB

// block is one link in the arena's block chain. Allocation bumps the
// high-water mark upward from the start of data; space counts the bytes
// left above it, and space reaching zero means the block is full.
type block struct {
	prev  *block
	data  []byte
	space int // bytes remaining at the tail of data
}

func newBlock(prev *block, capacity int) *block {
	if capacity < defaultBlockCapacity {
		capacity = defaultBlockCapacity
	}
	return &block{prev: prev, data: make([]byte, capacity), space: capacity}
}

// tryAllocate attempts to carve out sz bytes aligned to align from the tail
// of the block's remaining space. Returns nil if there isn't room.
func (b *block) tryAllocate(sz, align int) unsafe.Pointer {
	used := len(b.data) - b.space
	// Round the high-water mark up to align.
	misalign := used % align
	pad := 0
	if misalign != 0 {
		pad = align - misalign
	}
	if b.space < sz+pad {
		return nil
	}
	start := used + pad
	b.space -= sz + pad
	return unsafe.Pointer(&b.data[start])
}

// Arena bump-allocates values and releases them in O(1) at teardown. The
// zero Arena is empty and ready to use.
type Arena struct {
	current *block
}

// Allocate returns size bytes of storage aligned to align. The returned
// pointer remains valid, and is never invalidated by later allocations, for
// the lifetime of the Arena.
func (a *Arena) Allocate(size, align int) unsafe.Pointer {
	if align <= 0 {
		align = 1
	}
	if a.current != nil {
		if p := a.current.tryAllocate(size, align); p != nil {
			return p
		}
	}
	a.current = newBlock(a.current, max(size+align, defaultBlockCapacity))
	p := a.current.tryAllocate(size, align)
	if p == nil {
		panic("arena: allocation request does not fit in a fresh block")
	}
	return p
}

// Reset releases every block this arena owns, as if the arena were
// recreated from scratch. Pointers obtained before Reset must not be used
// afterwards.
func (a *Arena) Reset() {
	a.current = nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
