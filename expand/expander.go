package expand

import (
	"github.com/frengels/ely/internal/arena"
	"github.com/frengels/ely/internal/intern"
	"github.com/frengels/ely/report"
	"github.com/frengels/ely/scope"
	"github.com/frengels/ely/syntax"
)

// Expander drives spec.md §4.6's fixed-point rewrite loop over a syntax
// tree. It owns the scope generator (every scope this expansion session
// ever mints comes from here, per spec.md §4.3), the binding map, and the
// mutable current-scope-set variable that scope guards push and pop; the
// arena, the interner, and the diagnostic sink are supplied by the
// front-end session that created the Expander (spec.md
// §5: "the arena and interner are owned by the front-end instance").
type Expander struct {
	Arena    *arena.Arena
	Table    *intern.Table
	Bindings *BindingMap
	Report   *report.Report
	Gen      scope.Generator

	// Current is the scope set in effect for forms introduced by a binding
	// construct right now; it is mutated only inside a [scope.Guard]'s
	// acquire/release bracket (spec.md §5: "the scope-set variable tracked
	// by the expander is the one mutable piece of state").
	Current scope.Set
}

// NewExpander creates an Expander over the given front-end-owned arena,
// interner, and diagnostic sink, with the `define` builtin already
// registered (spec.md §4.6: "at minimum, a define builtin must be
// registered").
func NewExpander(a *arena.Arena, table *intern.Table, rep *report.Report) *Expander {
	ex := &Expander{
		Arena:    a,
		Table:    table,
		Bindings: &BindingMap{},
		Report:   rep,
	}
	ex.AddBuiltin("define", defineBuiltin)
	return ex
}

// AddBuiltin registers a transformer under name, visible from any use site
// (its scope set is empty, which is vacuously a subset of every use site's
// scope set). Any matching binding with a nonempty scope set resolves ahead
// of it; against another empty-scope binding for the same name, the one
// registered first wins.
func (ex *Expander) AddBuiltin(name string, t Transformer) {
	ex.Bindings.Insert(ex.Table.Intern(name), Binding{Transformer: t})
}

// ExpandOnce implements spec.md §4.6's expand_once: if s is a list whose
// first child is an identifier that resolves to a binding, the rewritten
// form is returned with ok=true. Otherwise s is returned unchanged with
// ok=false ("null = no rewrite happened").
func (ex *Expander) ExpandOnce(s syntax.Syntax) (syntax.Syntax, bool) {
	lst, ok := s.(*syntax.List)
	if !ok || len(lst.Children) == 0 {
		// spec.md §9 flags the source's implicit-nullptr bug on the
		// empty-list case; this explicit return is the fix.
		return s, false
	}
	head, ok := lst.Children[0].(*syntax.Identifier)
	if !ok {
		return s, false
	}
	binding, ok := ex.Bindings.Resolve(head.Symbol, head.Scopes)
	if !ok {
		return s, false
	}
	if binding.IsTransformer() {
		invocation := ex.hygienicClone(lst)
		return binding.Transformer(ex, ex.Report, invocation), true
	}
	return ex.substituteTemplate(binding), true
}

// ExpandAll drives ExpandOnce to a fixed point (spec.md §4.6: "drives
// expand_once until it returns null; the input is otherwise passed through
// unchanged").
func (ex *Expander) ExpandAll(s syntax.Syntax) syntax.Syntax {
	for {
		next, rewrote := ex.ExpandOnce(s)
		if !rewrote {
			return s
		}
		s = next
	}
}

// hygienicClone copies lst's operand children into the arena with ex's
// current scope set unioned onto each, then rebuilds the invocation list
// around the clones (spec.md §4.6 step 2: "copy the list's operand
// children into the arena ... with fresh scope annotations as needed").
// The head identifier is left untouched -- it is what resolution just
// matched against and must keep identifying the same binding.
func (ex *Expander) hygienicClone(lst *syntax.List) *syntax.List {
	children := make([]syntax.Syntax, len(lst.Children))
	children[0] = lst.Children[0]
	for i := 1; i < len(lst.Children); i++ {
		children[i] = ex.cloneWithScopes(lst.Children[i], ex.Current)
	}
	clone := syntax.NewList(lst.Open, lst.Close, children, lst.IsPoisoned)
	clone.Scopes = lst.Scopes
	return clone
}

// substituteTemplate implements spec.md §4.6 step 3: the template's own
// scope set is unioned into every node of a fresh copy of the template
// (since the whole copy "originated from the template"), giving the
// classical sets-of-scopes hygiene result that template-introduced
// identifiers resolve against the template's definition environment
// rather than the use site's.
func (ex *Expander) substituteTemplate(b Binding) syntax.Syntax {
	return ex.cloneWithScopes(b.Template, b.Scopes)
}

// cloneWithScopes deep-copies s into the arena, unioning extra onto every
// node's scope set along the way.
func (ex *Expander) cloneWithScopes(s syntax.Syntax, extra scope.Set) syntax.Syntax {
	switch n := s.(type) {
	case *syntax.List:
		children := make([]syntax.Syntax, len(n.Children))
		for i, c := range n.Children {
			children[i] = ex.cloneWithScopes(c, extra)
		}
		clone := syntax.NewList(n.Open, n.Close, children, n.IsPoisoned)
		clone.Scopes = n.Scopes.AddScopes(extra.All())
		return clone
	case *syntax.Identifier:
		clone := *n
		clone.Scopes = n.Scopes.AddScopes(extra.All())
		return arena.New(ex.Arena, clone)
	case *syntax.Literal:
		clone := *n
		clone.Scopes = n.Scopes.AddScopes(extra.All())
		return arena.New(ex.Arena, clone)
	default:
		return s
	}
}
