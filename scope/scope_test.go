package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frengels/ely/scope"
)

func TestGeneratorMintsDistinctIncreasingScopes(t *testing.T) {
	var g scope.Generator
	a := g.New()
	b := g.New()
	c := g.New()
	assert.Less(t, a, b)
	assert.Less(t, b, c)
}

func TestSetSubsetReflexive(t *testing.T) {
	var g scope.Generator
	s := scope.Set{}.AddScope(g.New()).AddScope(g.New())
	assert.True(t, s.SubsetOf(s))
}

func TestSetSubsetOfItsOwnExtension(t *testing.T) {
	var g scope.Generator
	s := scope.Set{}.AddScope(g.New())
	extended := s.AddScope(g.New())
	assert.True(t, s.SubsetOf(extended))
	assert.False(t, extended.SubsetOf(s))
}

func TestSetAntisymmetry(t *testing.T) {
	var g scope.Generator
	a := g.New()
	b := g.New()
	s1 := scope.Set{}.AddScope(a).AddScope(b)
	s2 := scope.Set{}.AddScope(b).AddScope(a)
	require.True(t, s1.SubsetOf(s2))
	require.True(t, s2.SubsetOf(s1))
	assert.True(t, s1.Equal(s2))
}

func TestAddScopeDoesNotMutateReceiver(t *testing.T) {
	var g scope.Generator
	base := scope.Set{}.AddScope(g.New())
	_ = base.AddScope(g.New())
	assert.Equal(t, 1, base.Size())
}

func TestAddScopeIdempotent(t *testing.T) {
	var g scope.Generator
	s := g.New()
	set := scope.Set{}.AddScope(s)
	again := set.AddScope(s)
	assert.Equal(t, 1, again.Size())
	assert.True(t, set.Equal(again))
}

func TestSubsetSizeDisambiguatesEmptyFromNoMatch(t *testing.T) {
	var g scope.Generator
	other := scope.Set{}.AddScope(g.New())

	empty := scope.Set{}
	size, isSubset := empty.SubsetSize(other)
	assert.Equal(t, 0, size)
	assert.True(t, isSubset, "the empty set is trivially a subset")

	disjoint := scope.Set{}.AddScope(g.New())
	size, isSubset = disjoint.SubsetSize(other)
	assert.Equal(t, 0, size)
	assert.False(t, isSubset, "a disjoint nonempty set is not a subset, despite the same zero count")
}

func TestHashStableAndOrderIndependent(t *testing.T) {
	var g scope.Generator
	a, b := g.New(), g.New()
	s1 := scope.Set{}.AddScope(a).AddScope(b)
	s2 := scope.Set{}.AddScope(b).AddScope(a)
	assert.Equal(t, s1.Hash(), s2.Hash())
}

func TestGuardLIFORestoresPriorSet(t *testing.T) {
	var gen scope.Generator
	var current scope.Set

	outer := scope.Acquire(&gen, &current)
	afterOuter := current
	require.Equal(t, 1, current.Size())

	inner := scope.Acquire(&gen, &current)
	require.Equal(t, 2, current.Size())

	inner.Release()
	assert.True(t, current.Equal(afterOuter))

	outer.Release()
	assert.Equal(t, 0, current.Size())
}
