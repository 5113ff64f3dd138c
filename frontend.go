// Package ely is the front-end session facade: it wires the lexer, reader,
// and expander into the single owning object spec.md §5 calls a "front-end
// instance" -- one arena, one interner, one expander (and the BindingMap
// and scope generator it owns), and one diagnostic sink, all tagged with a
// session id so a caller running several Frontends concurrently can always
// tell whose diagnostics belong to which.
package ely

import (
	"github.com/google/uuid"

	"github.com/frengels/ely/expand"
	"github.com/frengels/ely/internal/arena"
	"github.com/frengels/ely/internal/intern"
	"github.com/frengels/ely/report"
	"github.com/frengels/ely/syntax"
)

// Frontend turns source bytes into expanded syntax trees.
//
// The pipeline has three stages for each top-level form:
//  1. Lexing: arbitrary byte chunks become a token-record stream
//     (package lexer), resumable across chunk boundaries.
//  2. Reading: the token-record stream becomes a syntax tree (package
//     syntax), attaching atmosphere and recovering from bracket mismatches
//     by poisoning rather than aborting.
//  3. Expansion: the syntax tree is rewritten to a fixed point against a
//     binding map, tracking hygiene via scope sets (package expand).
//
// A Frontend is not safe for concurrent use by multiple goroutines (its
// interner and report are, but its arena and expander are not); running
// several inputs in parallel means creating one Frontend per
// input (spec.md §5: "nothing in the core shares mutable state across
// instances").
type Frontend struct {
	// Session identifies this Frontend; every Diagnostic it records
	// carries this id.
	Session uuid.UUID

	Arena    *arena.Arena
	Table    *intern.Table
	Report   *report.Report
	Expander *expand.Expander
}

// NewFrontend creates an empty Frontend: a fresh arena, interner, and
// expander (with the `define` builtin already registered), and a report
// tagged with a freshly minted session id.
func NewFrontend() *Frontend {
	a := &arena.Arena{}
	table := &intern.Table{}
	session := uuid.New()
	rep := report.New(session)
	return &Frontend{
		Session:  session,
		Arena:    a,
		Table:    table,
		Report:   rep,
		Expander: expand.NewExpander(a, table, rep),
	}
}

// NewReader returns a syntax.Reader over src, bound to this Frontend's
// arena, interner, and diagnostic sink.
func (f *Frontend) NewReader(src []byte) *syntax.Reader {
	return syntax.NewReader(src, f.Arena, f.Table, f.Report)
}

// ExpandSource reads every top-level form out of src and expands each to a
// fixed point, returning them in source order. The trailing Eof node is
// not included.
func (f *Frontend) ExpandSource(src []byte) []syntax.Syntax {
	r := f.NewReader(src)
	var forms []syntax.Syntax
	for {
		s := r.Next()
		if _, ok := s.(*syntax.Eof); ok {
			return forms
		}
		forms = append(forms, f.Expander.ExpandAll(s))
	}
}
