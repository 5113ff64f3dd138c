package expand

import (
	"github.com/frengels/ely/report"
	"github.com/frengels/ely/scope"
	"github.com/frengels/ely/syntax"
	"github.com/frengels/ely/token"
)

// defineBuiltin implements spec.md §4.6's minimum required builtin:
// `(define name expr)` installs a template binding for name under the
// current scope set and returns an empty form in its place. Scope
// discipline follows spec.md §4.6 ("forms that introduce bindings acquire
// a fresh scope via a scope guard ... bindings created inside the guard
// capture the then-current scope set by value"): define's own scope is
// acquired for the dynamic extent of processing its body, so the bound
// template sees that scope, and released before define returns.
func defineBuiltin(ex *Expander, rep *report.Report, s syntax.Syntax) syntax.Syntax {
	lst, ok := s.(*syntax.List)
	if !ok {
		rep.Errorf(spanOf(s), "define: expected a list form")
		return s
	}
	if len(lst.Children) != 3 {
		rep.Errorf(spanOf(lst), "define: expected (define name expr), got %d form(s)", len(lst.Children))
		return poisonedEmptyList(lst)
	}
	name, ok := lst.Children[1].(*syntax.Identifier)
	if !ok {
		rep.Errorf(spanOf(lst.Children[1]), "define: expected an identifier to define")
		return poisonedEmptyList(lst)
	}

	// The binding must stay resolvable by sibling forms once this define
	// finishes, so it is captured under the scope set that was already in
	// effect on entry -- not the transient scope acquired below, which
	// only governs how the body expression itself is processed (e.g. so a
	// self-recursive definition's body can see its own name).
	visibleScopes := ex.Current

	guard := scope.Acquire(&ex.Gen, &ex.Current)
	defer guard.Release()

	body := ex.cloneWithScopes(lst.Children[2], ex.Current)
	ex.Bindings.Insert(name.Symbol, Binding{Scopes: visibleScopes, Template: body})

	// An empty form: the definition itself carries no runtime value and is
	// never re-expanded (spec.md §9: "a correct reimplementation must
	// explicitly return 'no rewrite' on the empty-list case" -- which is
	// exactly what ExpandOnce does when handed the list this returns).
	return syntax.NewList(lst.Open, lst.Close, nil, false)
}

func poisonedEmptyList(lst *syntax.List) *syntax.List {
	return syntax.NewList(lst.Open, lst.Close, nil, true)
}

func spanOf(s syntax.Syntax) token.Span {
	switch n := s.(type) {
	case *syntax.List:
		return token.Span{Start: n.Open.Span.Start, End: n.Close.Span.End}
	case *syntax.Identifier:
		return n.Tok.Span
	case *syntax.Literal:
		return n.Tok.Span
	case *syntax.Eof:
		return n.Tok.Span
	default:
		return token.Span{}
	}
}
