// Package scope implements the hygiene primitives spec.md §4.3 describes:
// an opaque scope identifier, an ordered scope set with subset/hash
// semantics, and a LIFO scope guard. Binding resolution itself lives in
// package expand, which also needs package syntax's Syntax type for
// template bindings; keeping Scope/Set/Guard dependency-free here avoids a
// cycle between syntax (which annotates nodes with a Set) and expand.
package scope

// Scope is an opaque, dense identifier minted by a Generator. Comparison is
// id comparison; a lower id was minted earlier by the same Generator.
type Scope uint32

// Generator mints fresh, strictly increasing Scopes for one expansion
// session (spec.md §4.3: "a monotonically increasing counter unique per
// expansion session"). The zero Generator is ready to use.
type Generator struct {
	next uint32
}

// New mints a fresh Scope.
func (g *Generator) New() Scope {
	s := Scope(g.next)
	g.next++
	return s
}
