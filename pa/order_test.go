package pa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vidiask/swift/model"
	"github.com/vidiask/swift/pa"
)

func TestCanonicalOrder_RootsByKeyThenNestedLexicographic(t *testing.T) {
	a := newArena()
	t0 := a.AddGenericParameter(model.GenericParamKey{Depth: 0, Index: 0})
	t1 := a.AddGenericParameter(model.GenericParamKey{Depth: 0, Index: 1})

	assert.True(t, pa.CanonicalOrder(a, t0, t1))
	assert.False(t, pa.CanonicalOrder(a, t1, t0))
	assert.False(t, pa.CanonicalOrder(a, t0, t0), "equal only on identity")

	elem := a.NewNestedChild(t0, "Element")
	key := a.NewNestedChild(t0, "Key")
	assert.True(t, pa.CanonicalOrder(a, elem, key), `"Element" < "Key" lexicographically`)

	assert.True(t, pa.CanonicalOrder(a, t0, elem), "roots sort before nested PAs")
}

func TestCanonicalOrder_ConcreteSortsAfterNonConcrete(t *testing.T) {
	a := newArena()
	t0 := a.AddGenericParameter(model.GenericParamKey{Depth: 0, Index: 0})
	elemA := a.NewNestedChild(t0, "A")
	elemB := a.NewNestedChild(t0, "B")

	assert.True(t, pa.CanonicalOrder(a, elemA, elemB))

	// Binding elemB's class to a concrete type must keep it after elemA;
	// here concreteness and the lexicographic order ("A" < "B") agree.
	a.EquivalenceClass(elemB).AddConcrete(elemB, fakeType{"Int"}, nil)
	assert.True(t, pa.CanonicalOrder(a, elemA, elemB))

	a.EquivalenceClass(elemA).AddConcrete(elemA, fakeType{"Int"}, nil)
	// Both concrete now: falls through to structural comparison again.
	assert.True(t, pa.CanonicalOrder(a, elemA, elemB))
}

type fakeType struct{ name string }

func (f fakeType) String() string { return f.name }
