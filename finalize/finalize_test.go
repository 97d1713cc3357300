package finalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidiask/swift/diag"
	"github.com/vidiask/swift/env"
	"github.com/vidiask/swift/finalize"
	"github.com/vidiask/swift/model"
	"github.com/vidiask/swift/solver"
)

func newCtx() *env.Context {
	collector := &diag.Collector{}
	return env.New(nil, nil, collector)
}

func TestComputeDerivedComponents_MergesDerivedEdgesIntoOneComponentAnchoredCanonicallyLeast(t *testing.T) {
	ctx := newCtx()
	key := model.GenericParamKey{Depth: 0, Index: 0}
	root := ctx.Arena.AddGenericParameter(key)
	a := ctx.Arena.NewNestedChild(root, "A")
	b := ctx.Arena.NewNestedChild(root, "B")
	ctx.Arena.Union(root, a)
	ctx.Arena.Union(root, b)

	class := ctx.Arena.EquivalenceClass(ctx.Arena.Representative(root))
	// The derived source is rooted at b, which is not on a's nested-parent
	// chain, so the same-type self-derivation filter keeps both edges
	// (a source rooted at root would make them self-derived).
	bSrc := ctx.Sources.ForAbstract(b)
	derivedSrc := ctx.Sources.ViaParent(bSrc, fakeAssocDecl{"A"})
	class.AddSameType(root, a, derivedSrc)
	class.AddSameType(b, a, derivedSrc)

	finalize.Run(ctx, solver.New(ctx), nil, true)

	comps := class.Components()
	require.Len(t, comps, 1)
	assert.Equal(t, root, comps[0].Anchor)
}

func TestCheckUnresolvedGenericParams_DiagnosesConcreteBindingWhenDisallowed(t *testing.T) {
	ctx := newCtx()
	key := model.GenericParamKey{Depth: 0, Index: 0}
	root := ctx.Arena.AddGenericParameter(key)
	class := ctx.Arena.EquivalenceClass(ctx.Arena.Representative(root))
	src := ctx.Sources.ForExplicit(root, model.SourceLoc{})
	class.AddConcrete(root, fakeConcreteType{"Int"}, src)

	finalize.Run(ctx, solver.New(ctx), []model.GenericParamKey{key}, false)

	collector := ctx.Diag.(*diag.Collector)
	assert.True(t, collector.Has(diag.RequiresGenericParamMadeEqualToConcrete))
}

func TestCheckUnresolvedGenericParams_AllowsConcreteBindingWhenPermitted(t *testing.T) {
	ctx := newCtx()
	key := model.GenericParamKey{Depth: 0, Index: 0}
	root := ctx.Arena.AddGenericParameter(key)
	class := ctx.Arena.EquivalenceClass(ctx.Arena.Representative(root))
	src := ctx.Sources.ForExplicit(root, model.SourceLoc{})
	class.AddConcrete(root, fakeConcreteType{"Int"}, src)

	finalize.Run(ctx, solver.New(ctx), []model.GenericParamKey{key}, true)

	collector := ctx.Diag.(*diag.Collector)
	assert.False(t, collector.Has(diag.RequiresGenericParamMadeEqualToConcrete))
}

type fakeConcreteType struct{ name string }

func (f fakeConcreteType) String() string { return f.name }

type fakeAssocDecl struct{ name string }

func (a fakeAssocDecl) Name() string                 { return a.name }
func (a fakeAssocDecl) Protocol() model.ProtocolDecl { return nil }
func (a fakeAssocDecl) Ordinal() int                 { return 0 }
