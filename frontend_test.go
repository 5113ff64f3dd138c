package ely_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frengels/ely"
	"github.com/frengels/ely/syntax"
)

func TestNewFrontendHasDistinctSessionsPerInstance(t *testing.T) {
	a := ely.NewFrontend()
	b := ely.NewFrontend()
	assert.NotEqual(t, a.Session, b.Session)
}

func TestExpandSourceAppliesDefineAcrossTopLevelForms(t *testing.T) {
	f := ely.NewFrontend()
	forms := f.ExpandSource([]byte("(define x 1)\n(x)\n"))
	require.Len(t, forms, 2)
	require.Equal(t, 0, f.Report.Len())

	def, ok := forms[0].(*syntax.List)
	require.True(t, ok)
	assert.Empty(t, def.Children)

	// "(x)" is not itself a binding form -- x was defined as a template,
	// not a transformer, so it is never the head of a list being resolved
	// here, and expansion leaves it untouched.
	use, ok := forms[1].(*syntax.List)
	require.True(t, ok)
	require.Len(t, use.Children, 1)
}

func TestExpandSourceStopsAtEof(t *testing.T) {
	f := ely.NewFrontend()
	forms := f.ExpandSource([]byte(""))
	assert.Empty(t, forms)
}

func TestExpandSourceRecordsReaderErrorsButKeepsGoing(t *testing.T) {
	f := ely.NewFrontend()
	forms := f.ExpandSource([]byte("(a [b)\nok"))
	require.Len(t, forms, 2)
	assert.GreaterOrEqual(t, f.Report.Len(), 1)

	_, ok := forms[1].(*syntax.Identifier)
	assert.True(t, ok)
}
