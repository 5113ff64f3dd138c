package scope

// Guard is the scoped-acquisition abstraction spec.md §4.3 describes: on
// construction it mints a fresh scope and adds it to a mutable Set, and on
// Release it removes that scope again. The expander uses this to introduce
// a binding scope for the dynamic extent of processing one form, then
// retract it -- Guards must be released in LIFO order, strictly bracketing
// their acquisition, since Release simply restores the Set this Guard saw
// immediately before its own scope was added.
type Guard struct {
	target *Set
	prior  Set
	scope  Scope
}

// Acquire mints a fresh scope from gen, adds it to *target, and returns a
// Guard that will remove it again on Release. target is mutated in place;
// callers must release guards in the reverse of their acquisition order.
func Acquire(gen *Generator, target *Set) *Guard {
	prior := *target
	s := gen.New()
	*target = prior.AddScope(s)
	return &Guard{target: target, prior: prior, scope: s}
}

// Scope returns the scope this guard introduced.
func (g *Guard) Scope() Scope { return g.scope }

// Release restores *target to the Set it held immediately before this
// guard's Acquire call.
func (g *Guard) Release() {
	*g.target = g.prior
}
