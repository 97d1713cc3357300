package pa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidiask/swift/model"
	"github.com/vidiask/swift/pa"
	"github.com/vidiask/swift/source"
)

func newArena() *pa.Arena {
	return pa.NewArena(source.NewArena())
}

func TestArena_RepresentativeStability(t *testing.T) {
	a := newArena()
	t0 := a.AddGenericParameter(model.GenericParamKey{Depth: 0, Index: 0})
	t1 := a.AddGenericParameter(model.GenericParamKey{Depth: 0, Index: 1})
	t2 := a.AddGenericParameter(model.GenericParamKey{Depth: 0, Index: 2})

	require.NotEqual(t, a.Representative(t0), a.Representative(t1))

	survivor, _, merged := a.Union(t0, t1)
	require.True(t, merged)
	assert.Equal(t, survivor, a.Representative(t0))
	assert.Equal(t, survivor, a.Representative(t1))
	assert.NotEqual(t, a.Representative(t0), a.Representative(t2))

	// Union is transitive: equate t1==t2 and t0 must now agree with t2.
	survivor2, _, merged2 := a.Union(t1, t2)
	require.True(t, merged2)
	assert.Equal(t, survivor2, a.Representative(t0))
	assert.Equal(t, survivor2, a.Representative(t2))

	// Re-unioning already-equal PAs is a documented no-op.
	_, _, mergedAgain := a.Union(t0, t2)
	assert.False(t, mergedAgain)
}

func TestArena_UnionPicksCanonicallyLeastRepresentative(t *testing.T) {
	a := newArena()
	t0 := a.AddGenericParameter(model.GenericParamKey{Depth: 0, Index: 0})
	t1 := a.AddGenericParameter(model.GenericParamKey{Depth: 0, Index: 1})

	survivor, loser, merged := a.Union(t1, t0) // union called with higher-key first
	require.True(t, merged)
	assert.Equal(t, t0, survivor, "lower generic-parameter key must win canonical order")
	assert.Equal(t, t1, loser)
}

func TestArena_EquivalenceClassLazyAllocationAndMerge(t *testing.T) {
	a := newArena()
	t0 := a.AddGenericParameter(model.GenericParamKey{Depth: 0, Index: 0})
	t1 := a.AddGenericParameter(model.GenericParamKey{Depth: 0, Index: 1})

	assert.False(t, a.HasEquivalenceClass(t0))
	c0 := a.EquivalenceClass(t0)
	assert.True(t, a.HasEquivalenceClass(t0))
	assert.Len(t, c0.Members(), 1)

	c1 := a.EquivalenceClass(t1)
	c1.AddConcrete(t1, nil, nil)

	survivor, _, _ := a.Union(t0, t1)
	merged := a.EquivalenceClass(survivor)
	assert.Len(t, merged.Members(), 2)
	assert.ElementsMatch(t, []model.PAID{t0, t1}, merged.Members())
}

func TestArena_NestedChildrenOrderedAndCoexist(t *testing.T) {
	a := newArena()
	root := a.AddGenericParameter(model.GenericParamKey{Depth: 0, Index: 0})

	first := a.NewNestedChild(root, "Element")
	second := a.NewNestedChild(root, "Element")
	assert.NotEqual(t, first, second, "duplicate-named children may coexist before being equated")
	assert.Equal(t, []model.PAID{first, second}, a.Get(root).Children("Element"))
}
