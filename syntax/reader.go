package syntax

import (
	"github.com/frengels/ely/internal/arena"
	"github.com/frengels/ely/internal/intern"
	"github.com/frengels/ely/lexer"
	"github.com/frengels/ely/report"
	"github.com/frengels/ely/token"
)

// defaultMaxDepth bounds list nesting so a pathological input (thousands of
// nested open parens) fails with a reader error instead of overflowing the
// goroutine stack (spec.md §9: "bound recursion depth with an explicit
// error on excess").
const defaultMaxDepth = 4096

// Reader turns a lexer's token-record stream into a syntax tree (spec.md
// §4.5). It operates as a one-token lookahead over the record stream: atoms
// and structure are produced incrementally by repeated calls to Next.
//
// A Reader owns the full source text for span-to-text lookups (identifier
// spelling, literal content); it builds its own [lexer.Stream] over that
// text via [lexer.NewSliceSource]. This trades away arbitrary chunked
// ingestion at the reader layer -- chunking is exercised directly against
// the lexer/Stream, which is the layer spec.md §8's chunking-equivalence
// property actually concerns -- for the simplicity of letting the reader
// slice identifier and literal text straight out of the original bytes.
type Reader struct {
	src   []byte
	raw   rawPuller
	arena *arena.Arena
	table *intern.Table
	rep   *report.Report

	// MaxDepth bounds list nesting depth; 0 means defaultMaxDepth.
	MaxDepth int

	pendingReal *realToken
	depth       int
	eof         *Eof
}

type realToken struct {
	tok  Token
	kind token.Kind
}

// NewReader creates a Reader over src, allocating syntax nodes in a and
// interning identifier text into table. Errors are recorded on rep.
func NewReader(src []byte, a *arena.Arena, table *intern.Table, rep *report.Report) *Reader {
	return &Reader{
		src:   src,
		raw:   rawPuller{stream: lexer.NewStream(lexer.NewSliceSource(src))},
		arena: a,
		table: table,
		rep:   rep,
	}
}

func (r *Reader) maxDepth() int {
	if r.MaxDepth > 0 {
		return r.MaxDepth
	}
	return defaultMaxDepth
}

// Next returns the next top-level syntax form, or an Eof node once the
// input is exhausted (spec.md §4.5). Once Eof has been returned, every
// subsequent call returns the same Eof node.
func (r *Reader) Next() Syntax {
	if r.eof != nil {
		return r.eof
	}
	for {
		tok, kind, ok := r.nextRealToken()
		if !ok {
			r.eof = &Eof{}
			return r.eof
		}
		switch {
		case kind == token.EOF:
			r.eof = &Eof{Tok: tok}
			return r.eof
		case isOpener(kind):
			return r.readList(tok, kind)
		case isCloser(kind):
			r.rep.Errorf(tok.Span, "unexpected %s at top level", kind)
			continue
		default:
			return r.leaf(tok, kind)
		}
	}
}

func isOpener(k token.Kind) bool {
	_, ok := closerFor(k)
	return ok
}

// readList reads the children of a list opened by openTok/openKind, up to
// and including its closer, recovering from mismatched closers and
// unexpected EOF by poisoning rather than aborting (spec.md §4.5).
func (r *Reader) readList(openTok Token, openKind token.Kind) *List {
	wantClose, _ := closerFor(openKind)

	r.depth++
	defer func() { r.depth-- }()
	if r.depth > r.maxDepth() {
		r.rep.Errorf(openTok.Span, "max nesting depth exceeded")
		closeTok := poisonCloser(openTok.Span.End, wantClose)
		return NewList(openTok, closeTok, nil, true)
	}

	var children []Syntax
	for {
		tok, kind, ok := r.nextRealToken()
		if !ok || kind == token.EOF {
			r.rep.Errorf(openTok.Span, "unexpected end of input, expected %s", wantClose)
			closeTok := poisonCloser(tok.Span.Start, wantClose)
			if ok {
				// Let the top-level Next() (or an enclosing readList, which
				// will see the same unexpected-EOF condition and unwind the
				// same way) still observe the real Eof token.
				r.pendingReal = &realToken{tok: tok, kind: kind}
			}
			return NewList(openTok, closeTok, children, true)
		}

		switch {
		case kind == wantClose:
			return NewList(openTok, tok, children, false)
		case isCloser(kind):
			r.rep.Errorf(tok.Span, "expected %s before %s", wantClose, kind)
			closeTok := poisonCloser(tok.Span.Start, wantClose)
			// Re-process the actual closer at the outer scope (spec.md
			// §4.5): push it back so whichever caller reads next -- the
			// enclosing readList, or the top-level Next() -- decides
			// whether it is their own expected closer.
			r.pendingReal = &realToken{tok: tok, kind: kind}
			return NewList(openTok, closeTok, children, true)
		case isOpener(kind):
			children = append(children, r.readList(tok, kind))
		default:
			children = append(children, r.leaf(tok, kind))
		}
	}
}

// poisonCloser synthesizes a zero-length closer token of kind at pos, used
// when the reader must invent a closer that was never actually present in
// the source.
func poisonCloser(pos int, kind token.Kind) Token {
	return Token{Kind: kind, Span: token.Span{Start: pos, End: pos}}
}

func (r *Reader) leaf(tok Token, kind token.Kind) Syntax {
	poisoned := kind == token.UnterminatedStringLit || kind == token.InvalidNumberSign ||
		kind == token.Unknown || kind == token.UnknownRun
	if kind == token.Identifier {
		sym := r.table.Intern(r.text(tok.Span))
		return arena.New(r.arena, Identifier{Tok: tok, Symbol: sym, IsPoisoned: poisoned})
	}
	return arena.New(r.arena, Literal{Tok: tok, IsPoisoned: poisoned})
}

func (r *Reader) text(span token.Span) string {
	if span.Start < 0 || span.End > len(r.src) || span.Start > span.End {
		return ""
	}
	return string(r.src[span.Start:span.End])
}

// nextRealToken returns the next non-atmosphere record as a fully formed
// Token (with its leading and trailing atmosphere already attached) and its
// Kind, or ok=false if the underlying stream has nothing left at all (which
// in practice never happens, since the lexer always terminates with an Eof
// record).
func (r *Reader) nextRealToken() (Token, token.Kind, bool) {
	if r.pendingReal != nil {
		rt := r.pendingReal
		r.pendingReal = nil
		return rt.tok, rt.kind, true
	}

	var leading []Atmosphere
	for {
		rec, ok := r.raw.take()
		if !ok {
			return Token{}, 0, false
		}
		if rec.Kind.IsAtmosphere() {
			leading = append(leading, r.raw.atmosphere(rec))
			continue
		}
		tok := Token{Kind: rec.Kind, Span: r.raw.span(rec), Leading: leading}
		tok.Trailing = r.collectTrailing()
		return tok, rec.Kind, true
	}
}

// collectTrailing greedily consumes atmosphere immediately following the
// token just produced, stopping at the first newline (inclusive) or the
// next non-atmosphere record (exclusive) -- spec.md §4.5's attachment
// policy: "a record is a trailing-atmosphere candidate iff it is
// whitespace/tab/comment but not a newline, stopping at the first newline
// or non-atmosphere record" (a newline itself is also claimed, ending the
// list).
func (r *Reader) collectTrailing() []Atmosphere {
	var trailing []Atmosphere
	for {
		rec, ok := r.raw.peek()
		if !ok || !rec.Kind.IsAtmosphere() {
			return trailing
		}
		r.raw.take()
		trailing = append(trailing, r.raw.atmosphere(rec))
		if rec.Kind.IsNewline() {
			return trailing
		}
	}
}

// rawPuller wraps a lexer.Stream with one-record lookahead and absolute
// source-position bookkeeping, since token.Record only carries a wire
// length, not an original-source byte offset.
type rawPuller struct {
	stream   *lexer.Stream
	pos      int
	buffered *token.Record
}

func (p *rawPuller) peek() (token.Record, bool) {
	if p.buffered == nil {
		rec, ok := p.stream.Next()
		if !ok {
			return token.Record{}, false
		}
		p.buffered = &rec
	}
	return *p.buffered, true
}

func (p *rawPuller) take() (token.Record, bool) {
	rec, ok := p.peek()
	if ok {
		p.buffered = nil
	}
	return rec, ok
}

// span returns rec's source span at the puller's current position and
// advances that position by the span's length.
func (p *rawPuller) span(rec token.Record) token.Span {
	length := sourceLen(rec)
	start := p.pos
	p.pos += length
	return token.Span{Start: start, End: start + length}
}

func (p *rawPuller) atmosphere(rec token.Record) Atmosphere {
	return Atmosphere{Kind: rec.Kind, Span: p.span(rec)}
}

// sourceLen returns how many original source bytes rec's record represents.
// This is distinct from the record's own wire length: a zero-arg record is
// always exactly one wire byte, but NewlineCRLF and the two-character quote
// forms (",@", "#'", "#`", "#,") cover two source bytes, "#,@" covers
// three, and Eof covers zero (the sentinel byte the lexer consumed
// internally is synthetic padding, not part of the caller's actual input).
func sourceLen(rec token.Record) int {
	switch rec.Kind {
	case token.EOF:
		return 0
	case token.NewlineCRLF, token.UnquoteSplicing, token.SyntaxQuote,
		token.QuasiSyntax, token.SyntaxUnquote:
		return 2
	case token.SyntaxUnquoteSplicing:
		return 3
	case token.BlockComment:
		return rec.Length
	}
	if rec.Kind.IsLengthTagged() {
		return rec.Length
	}
	return 1
}
