package syntax_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frengels/ely/internal/arena"
	"github.com/frengels/ely/internal/intern"
	"github.com/frengels/ely/report"
	"github.com/frengels/ely/syntax"
	"github.com/frengels/ely/token"
)

func newReader(t *testing.T, src string) (*syntax.Reader, *intern.Table, *report.Report) {
	t.Helper()
	a := &arena.Arena{}
	tbl := &intern.Table{}
	rep := report.New(uuid.New())
	return syntax.NewReader([]byte(src), a, tbl, rep), tbl, rep
}

func TestEmptyInputYieldsOneEof(t *testing.T) {
	r, _, _ := newReader(t, "")
	n := r.Next()
	_, ok := n.(*syntax.Eof)
	assert.True(t, ok)

	// Repeated calls return the same Eof node.
	assert.Same(t, n, r.Next())
}

func TestSimpleDefinitionTree(t *testing.T) {
	r, tbl, rep := newReader(t, "(def (f x) (* x x))\n")
	n := r.Next()
	require.Equal(t, 0, rep.Len())

	outer, ok := n.(*syntax.List)
	require.True(t, ok)
	assert.False(t, outer.Poisoned())
	require.Len(t, outer.Children, 3)

	def, ok := outer.Children[0].(*syntax.Identifier)
	require.True(t, ok)
	assert.Equal(t, "def", tbl.Value(def.Symbol))

	inner1, ok := outer.Children[1].(*syntax.List)
	require.True(t, ok)
	require.Len(t, inner1.Children, 2)

	inner2, ok := outer.Children[2].(*syntax.List)
	require.True(t, ok)
	require.Len(t, inner2.Children, 3)

	// The outer close-paren's trailing atmosphere should contain the
	// trailing newline.
	require.NotEmpty(t, outer.Close.Trailing)
	last := outer.Close.Trailing[len(outer.Close.Trailing)-1]
	assert.True(t, last.Kind.IsNewline())

	eof := r.Next()
	_, ok = eof.(*syntax.Eof)
	assert.True(t, ok)
}

func TestDecimalLiteralNode(t *testing.T) {
	r, _, _ := newReader(t, "123.45")
	n := r.Next()
	lit, ok := n.(*syntax.Literal)
	require.True(t, ok)
	assert.Equal(t, token.DecimalLit, lit.Tok.Kind)
	assert.False(t, lit.Poisoned())
}

func TestUnterminatedStringIsPoisonedLiteral(t *testing.T) {
	r, _, _ := newReader(t, `"hello`)
	n := r.Next()
	lit, ok := n.(*syntax.Literal)
	require.True(t, ok)
	assert.Equal(t, token.UnterminatedStringLit, lit.Tok.Kind)
	assert.True(t, lit.Poisoned())
}

// TestMismatchedBracketPoisons exercises spec.md §8's scenario 5: "(a [b)"
// yields one outer poisoned List with two children, the second of which is
// itself a poisoned List whose close was synthesized, and the outer's real
// close-paren is not lost.
func TestMismatchedBracketPoisons(t *testing.T) {
	r, tbl, rep := newReader(t, "(a [b)")
	n := r.Next()
	require.GreaterOrEqual(t, rep.Len(), 1)

	outer, ok := n.(*syntax.List)
	require.True(t, ok)
	assert.True(t, outer.Poisoned())
	require.Len(t, outer.Children, 2)

	a, ok := outer.Children[0].(*syntax.Identifier)
	require.True(t, ok)
	assert.Equal(t, "a", tbl.Value(a.Symbol))

	inner, ok := outer.Children[1].(*syntax.List)
	require.True(t, ok)
	assert.True(t, inner.Poisoned())
	require.Len(t, inner.Children, 1)
	b, ok := inner.Children[0].(*syntax.Identifier)
	require.True(t, ok)
	assert.Equal(t, "b", tbl.Value(b.Symbol))

	// The outer's actual closer is the real ')' token, not poisoned/synthetic.
	assert.Equal(t, token.RParen, outer.Close.Kind)
	assert.False(t, outer.Close.Span.IsZero())

	// And the reader still terminates normally afterwards.
	eof := r.Next()
	_, ok = eof.(*syntax.Eof)
	assert.True(t, ok)
}

func TestUnexpectedEofInsideListPoisons(t *testing.T) {
	r, _, rep := newReader(t, "(a b")
	n := r.Next()
	require.GreaterOrEqual(t, rep.Len(), 1)

	outer, ok := n.(*syntax.List)
	require.True(t, ok)
	assert.True(t, outer.Poisoned())
	require.Len(t, outer.Children, 2)

	eof := r.Next()
	_, ok = eof.(*syntax.Eof)
	assert.True(t, ok, "the Eof token must still be observable after the poisoned list returns")
}

func TestBareCloserAtTopLevelIsDiscarded(t *testing.T) {
	r, tbl, rep := newReader(t, ") foo")
	n := r.Next()
	assert.GreaterOrEqual(t, rep.Len(), 1)

	id, ok := n.(*syntax.Identifier)
	require.True(t, ok, "the stray ')' must be discarded, not returned as a node")
	assert.Equal(t, "foo", tbl.Value(id.Symbol))
}

// TestSizeComposition exercises spec.md §8's size-composition invariant for
// a list: its Size covers the whole source, and its InnerSize is the open
// and close spans plus the sizes of its children.
func TestSizeComposition(t *testing.T) {
	src := "(foo bar)"
	r, _, _ := newReader(t, src)
	n := r.Next()
	list, ok := n.(*syntax.List)
	require.True(t, ok)

	assert.Equal(t, len(src), list.Size())

	sum := 0
	for _, c := range list.Children {
		sum += c.Size()
	}
	assert.Equal(t, list.Open.Span.Len()+list.Close.Span.Len()+sum, list.InnerSize)
}

func TestMaxDepthBoundsRecursion(t *testing.T) {
	src := ""
	for i := 0; i < 10; i++ {
		src += "("
	}
	src += "x"
	for i := 0; i < 10; i++ {
		src += ")"
	}
	r, _, rep := newReader(t, src)
	r.MaxDepth = 3
	n := r.Next()
	list, ok := n.(*syntax.List)
	require.True(t, ok)
	assert.True(t, list.Poisoned())
	assert.GreaterOrEqual(t, rep.Len(), 1)
}
