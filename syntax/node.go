package syntax

import (
	"github.com/frengels/ely/internal/intern"
	"github.com/frengels/ely/scope"
	"github.com/frengels/ely/token"
)

// Syntax is the common interface implemented by every syntax node kind
// (spec.md §3: "List(open, close, children, inner_size, poisoned),
// Identifier(token), Literal(token), Eof(token)"). Nodes are allocated in
// an [github.com/frengels/ely/internal/arena.Arena] and are immutable after
// construction; their ScopeSet may be structurally shared but is never
// mutated in place (spec.md §5).
type Syntax interface {
	// Size returns leading_size + inner_size + trailing_size: the total
	// byte span this node's atmosphere and content occupy in the original
	// source (spec.md §8's size-composition invariant).
	Size() int
	// Poisoned reports whether this node (or something beneath it) carries
	// a recoverable lex/parse error.
	Poisoned() bool
}

// List is a parenthesized/bracketed/braced form (spec.md §3, §4.5).
type List struct {
	Open, Close Token
	Children    []Syntax
	// InnerSize is open.Span.Len() + close.Span.Len() + the atmosphere
	// strictly between the brackets (open's trailing, close's leading) +
	// sum(children.Size()) -- i.e. Size() minus this list's own leading
	// and trailing atmosphere. Stored at construction time so Size() is
	// O(1); see NewList.
	InnerSize int
	// IsPoisoned is true if the closer was synthesized (mismatched
	// bracket or EOF before any closer) or any child is poisoned.
	IsPoisoned bool
	Scopes     scope.Set
}

// NewList builds a List, computing InnerSize from open/close/children so
// that Size() satisfies spec.md §8's invariant by construction.
func NewList(open, close Token, children []Syntax, poisoned bool) *List {
	inner := open.Span.Len() + atmosphereListSize(open.Trailing) +
		atmosphereListSize(close.Leading) + close.Span.Len()
	for _, c := range children {
		inner += c.Size()
		poisoned = poisoned || c.Poisoned()
	}
	return &List{Open: open, Close: close, Children: children, InnerSize: inner, IsPoisoned: poisoned}
}

// Size implements [Syntax].
func (l *List) Size() int {
	return atmosphereListSize(l.Open.Leading) + l.InnerSize + atmosphereListSize(l.Close.Trailing)
}

// Poisoned implements [Syntax].
func (l *List) Poisoned() bool { return l.IsPoisoned }

// Identifier is a bare symbol (spec.md §3: "Identifier(token)").
type Identifier struct {
	Tok        Token
	Symbol     intern.ID
	Scopes     scope.Set
	IsPoisoned bool
}

// Size implements [Syntax].
func (id *Identifier) Size() int { return id.Tok.Size() }

// Poisoned implements [Syntax].
func (id *Identifier) Poisoned() bool { return id.IsPoisoned }

// Literal is a self-evaluating datum: integer, decimal, string, char,
// keyword, or bool (spec.md §3: "Literal(token)").
type Literal struct {
	Tok        Token
	Scopes     scope.Set
	IsPoisoned bool
}

// Size implements [Syntax].
func (l *Literal) Size() int { return l.Tok.Size() }

// Poisoned implements [Syntax].
func (l *Literal) Poisoned() bool { return l.IsPoisoned }

// Eof marks the logical end of input (spec.md §3: "Eof(token)").
type Eof struct {
	Tok Token
}

// Size implements [Syntax].
func (e *Eof) Size() int { return e.Tok.Size() }

// Poisoned implements [Syntax]. Eof is never itself poisoned.
func (e *Eof) Poisoned() bool { return false }

// closerFor returns the Kind that closes an opener, and whether k is an
// opener at all.
func closerFor(k token.Kind) (token.Kind, bool) {
	switch k {
	case token.LParen:
		return token.RParen, true
	case token.LBracket:
		return token.RBracket, true
	case token.LBrace:
		return token.RBrace, true
	}
	return 0, false
}

func isCloser(k token.Kind) bool {
	switch k {
	case token.RParen, token.RBracket, token.RBrace:
		return true
	}
	return false
}
