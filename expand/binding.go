// Package expand implements the hygienic macro expander spec.md §4.6
// describes: a fixed-point rewrite loop over a [syntax.Syntax] tree, driven
// by a [BindingMap] that resolves an identifier's binding by picking the
// use site's best-matching scope set (the Flatt "sets of scopes"
// algorithm; see spec.md §9).
package expand

import (
	"github.com/frengels/ely/internal/intern"
	"github.com/frengels/ely/report"
	"github.com/frengels/ely/scope"
	"github.com/frengels/ely/syntax"
)

// Transformer rewrites the syntax form it was invoked on (spec.md §4.6,
// step 2: "invoke the transformer with the original syntax as its
// argument"). A Transformer that detects a misuse must itself produce a
// poisoned syntax node rather than panic (spec.md §4.6, "Failure"); rep is
// provided so it can also record a diagnostic explaining why.
type Transformer func(ex *Expander, rep *report.Report, s syntax.Syntax) syntax.Syntax

// Binding pairs a scope set with either a Transformer or a syntax template
// (spec.md §4.3: "value is an insertion-ordered list of bindings, each
// pairing a scope set with either a transformer or a syntax template").
// Exactly one of Transformer or Template is set.
type Binding struct {
	Scopes      scope.Set
	Transformer Transformer
	Template    syntax.Syntax
}

// IsTransformer reports whether this binding carries a transformer rather
// than a template.
func (b Binding) IsTransformer() bool { return b.Transformer != nil }

// BindingMap is keyed by interned symbol; each key's bindings are kept in
// insertion order so that resolution ties break toward the earlier
// registration (spec.md §4.3, §5 "Transformer-registration order is
// preserved; resolution ties use insertion order"). The zero BindingMap is
// empty and ready to use.
type BindingMap struct {
	buckets map[intern.ID][]Binding
}

// Insert appends a new binding for symbol, after every binding already
// registered for it.
func (m *BindingMap) Insert(symbol intern.ID, b Binding) {
	if m.buckets == nil {
		m.buckets = make(map[intern.ID][]Binding)
	}
	m.buckets[symbol] = append(m.buckets[symbol], b)
}

// Resolve implements spec.md §4.3's resolution rule: among symbol's
// registered bindings whose scope set is a subset of useScopes, return the
// one with the largest subset size, breaking ties by insertion order (the
// first-inserted candidate wins). ok is false if no binding's scope set is
// a subset of useScopes at all.
func (m *BindingMap) Resolve(symbol intern.ID, useScopes scope.Set) (b Binding, ok bool) {
	best := -1
	for _, cand := range m.buckets[symbol] {
		size, isSubset := cand.Scopes.SubsetSize(useScopes)
		if !isSubset {
			continue
		}
		if size > best {
			best = size
			b, ok = cand, true
		}
	}
	return b, ok
}
