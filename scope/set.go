package scope

import (
	"sort"

	"github.com/dchest/siphash"
)

// Set is a value-typed, ordered set of Scopes (spec.md §4.3). Elements are
// kept sorted by id, which gives Set a single canonical representation:
// two sets with the same elements always compare Equal and hash the same,
// and iteration order is deterministic. The zero Set is empty.
//
// Set is immutable once constructed: AddScope/AddScopes always return a new
// Set rather than mutating the receiver, so a Set can be freely shared
// between syntax nodes without aliasing surprises.
type Set struct {
	scopes []Scope
}

// Size returns the number of scopes in s.
func (s Set) Size() int { return len(s.scopes) }

// All returns the set's elements in ascending id order. The returned slice
// must not be modified by the caller.
func (s Set) All() []Scope { return s.scopes }

func (s Set) indexOf(x Scope) (int, bool) {
	i := sort.Search(len(s.scopes), func(i int) bool { return s.scopes[i] >= x })
	if i < len(s.scopes) && s.scopes[i] == x {
		return i, true
	}
	return i, false
}

// Contains reports whether x is in s.
func (s Set) Contains(x Scope) bool {
	_, ok := s.indexOf(x)
	return ok
}

// AddScope returns a new Set containing every element of s plus x, without
// modifying s. Adding an already-present scope returns s unchanged.
func (s Set) AddScope(x Scope) Set {
	i, ok := s.indexOf(x)
	if ok {
		return s
	}
	out := make([]Scope, 0, len(s.scopes)+1)
	out = append(out, s.scopes[:i]...)
	out = append(out, x)
	out = append(out, s.scopes[i:]...)
	return Set{scopes: out}
}

// AddScopes returns a new Set containing every element of s plus every
// element of xs, without modifying s.
func (s Set) AddScopes(xs []Scope) Set {
	out := s
	for _, x := range xs {
		out = out.AddScope(x)
	}
	return out
}

// SubsetOf reports whether every element of s is also in other.
func (s Set) SubsetOf(other Set) bool {
	for _, x := range s.scopes {
		if !other.Contains(x) {
			return false
		}
	}
	return true
}

// SubsetSize reports how many of s's elements are present in other, and
// whether s is a full subset of other (size == s.Size()). The spec calls
// out the original source's subset_size as ambiguous: it returned a plain
// 0 both for "s is the empty set, trivially a subset" and for "s is not a
// subset at all", so callers couldn't distinguish the two from the count
// alone. Returning the isSubset bool alongside the count removes that
// ambiguity (spec.md §9).
func (s Set) SubsetSize(other Set) (size int, isSubset bool) {
	for _, x := range s.scopes {
		if other.Contains(x) {
			size++
		}
	}
	return size, size == len(s.scopes)
}

// Equal reports whether s and other contain exactly the same scopes.
func (s Set) Equal(other Set) bool {
	if len(s.scopes) != len(other.scopes) {
		return false
	}
	for i, x := range s.scopes {
		if other.scopes[i] != x {
			return false
		}
	}
	return true
}

// hashKey0/hashKey1 are fixed SipHash keys. Set.Hash is for in-process use
// only (nothing in this module calls it; BindingMap buckets by interned
// symbol), never persisted or compared across processes, so a fixed key is
// sufficient --
// the same tradeoff the teacher's interphash.go makes for bytecode hash
// registers.
const (
	hashKey0 uint64 = 0
	hashKey1 uint64 = 0
)

// Hash returns a SipHash-2-4 digest of s's sorted scope-id sequence, giving
// Set the "hashing" operation spec.md §4.3 requires.
func (s Set) Hash() uint64 {
	buf := make([]byte, len(s.scopes)*4)
	for i, x := range s.scopes {
		buf[i*4+0] = byte(x)
		buf[i*4+1] = byte(x >> 8)
		buf[i*4+2] = byte(x >> 16)
		buf[i*4+3] = byte(x >> 24)
	}
	return siphash.Hash(hashKey0, hashKey1, buf)
}
