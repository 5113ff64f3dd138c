// Package intern provides a table that deduplicates identifier text into
// dense, stably-comparable symbol ids.
package intern

import (
	"fmt"
	"strings"
	"sync"
)

// ID is an interned string in a particular [Table].
//
// The zero ID always corresponds to the empty string. IDs from different
// Tables must never be compared or passed to each other's Value.
type ID uint32

// String implements [fmt.Stringer]. It does not recover the interned text;
// use [Table.Value] for that.
func (id ID) String() string {
	return fmt.Sprintf("intern.ID(%d)", uint32(id))
}

// Table interns strings into [ID]s and back again. The zero Table is empty
// and ready to use, and is safe for concurrent use by multiple goroutines
// (per spec.md §5, distinct front-end instances never share a Table, but
// nothing prevents a caller from sharing one deliberately).
type Table struct {
	mu    sync.RWMutex
	index map[string]ID
	table []string
}

// Intern interns the given bytes, returning a stable ID. Calling Intern
// with equal text always yields equal IDs.
func (t *Table) Intern(s string) ID {
	if s == "" {
		return 0
	}
	return t.InternKeyed(s, s)
}

// InternKeyed is like Intern, but looks the string up (and deduplicates)
// under a caller-chosen key rather than s itself. This lets a caller mint a
// fresh, never-before-seen ID for text that nonetheless prints the same as
// existing interned text.
func (t *Table) InternKeyed(key, s string) ID {
	t.mu.RLock()
	id, ok := t.index[key]
	t.mu.RUnlock()
	if ok {
		return id
	}

	// Tables are long-lived; don't keep a larger backing buffer alive than
	// necessary by holding on to a substring of it.
	s = strings.Clone(s)
	key = strings.Clone(key)

	t.mu.Lock()
	defer t.mu.Unlock()

	if id, ok := t.index[key]; ok {
		return id
	}

	t.table = append(t.table, s)
	id = ID(len(t.table))

	if t.index == nil {
		t.index = make(map[string]ID)
	}
	t.index[key] = id
	return id
}

// Value converts an ID back into its interned text. The returned string is
// stable: it is never moved or mutated for the lifetime of the Table.
func (t *Table) Value(id ID) string {
	if id == 0 {
		return ""
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table[int(id)-1]
}

// Len returns the number of distinct strings interned so far.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.table)
}
