package nested_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidiask/swift/env"
	"github.com/vidiask/swift/model"
	"github.com/vidiask/swift/nested"
	"github.com/vidiask/swift/source"
)

// fakeEquator records every call instead of performing real union-find
// merges; nested-package tests only need to observe that discovery
// reaches for same-type on the right pairs.
type fakeEquator struct {
	sameType []struct{ a, b model.PAID }
	concrete []struct {
		id model.PAID
		t  model.TypeRepr
	}
}

func (f *fakeEquator) AddSameType(a, b model.PAID, _ *source.Source) model.ConstraintResult {
	f.sameType = append(f.sameType, struct{ a, b model.PAID }{a, b})
	return model.Resolved
}

func (f *fakeEquator) BindConcrete(id model.PAID, t model.TypeRepr, _ *source.Source) model.ConstraintResult {
	f.concrete = append(f.concrete, struct {
		id model.PAID
		t  model.TypeRepr
	}{id, t})
	return model.Resolved
}

type fakeAssoc struct {
	name    string
	proto   model.ProtocolDecl
	ordinal int
}

func (a fakeAssoc) Name() string               { return a.name }
func (a fakeAssoc) Protocol() model.ProtocolDecl { return a.proto }
func (a fakeAssoc) Ordinal() int               { return a.ordinal }

type fakeProto struct {
	name   string
	module fakeModule
	assocs []model.AssocTypeDecl
}

func (p *fakeProto) Name() string                     { return p.name }
func (p *fakeProto) Module() model.ModuleRef           { return p.module }
func (p *fakeProto) InheritedProtocols() []model.ProtocolDecl { return nil }
func (p *fakeProto) AssociatedTypes() []model.AssocTypeDecl   { return p.assocs }
func (p *fakeProto) TypeAliases() []model.TypeAliasDecl       { return nil }
func (p *fakeProto) RequirementSignature() ([]model.ProtocolRequirement, bool) {
	return nil, true
}

type fakeModule struct{ path string }

func (m fakeModule) Path() string { return m.path }

func TestGetNestedTypeByName_AddIfMissingCreatesUnresolvedWhenNoAnchor(t *testing.T) {
	ctx := env.New(nil, nil, nil)
	root := ctx.Arena.AddGenericParameter(model.GenericParamKey{})
	eq := &fakeEquator{}

	id, ok := nested.GetNestedTypeByName(ctx, eq, root, "Ghost", nested.AddIfMissing)
	require.True(t, ok)
	assert.True(t, ctx.Arena.Get(id).IsUnresolvedNested())
	assert.Equal(t, 1, ctx.UnresolvedNested)
}

func TestGetNestedTypeByName_ResolveExistingNeverCreates(t *testing.T) {
	ctx := env.New(nil, nil, nil)
	root := ctx.Arena.AddGenericParameter(model.GenericParamKey{})
	eq := &fakeEquator{}

	_, ok := nested.GetNestedTypeByName(ctx, eq, root, "Element", nested.ResolveExisting)
	assert.False(t, ok)
	assert.Equal(t, 1, ctx.Arena.Len(), "no child PA allocated")
}

func TestGetNestedTypeByName_AnchorDiscoveryResolvesAssocType(t *testing.T) {
	ctx := env.New(nil, nil, nil)
	root := ctx.Arena.AddGenericParameter(model.GenericParamKey{})
	proto := &fakeProto{name: "Sequence", module: fakeModule{"Swift"}}
	elem := fakeAssoc{name: "Element", proto: proto, ordinal: 0}
	proto.assocs = []model.AssocTypeDecl{elem}

	ctx.Arena.EquivalenceClass(root).AddConformance(root, proto, ctx.Sources.ForExplicit(root, model.SourceLoc{}))

	eq := &fakeEquator{}
	id, ok := nested.GetNestedTypeByName(ctx, eq, root, "Element", nested.AddIfMissing)
	require.True(t, ok)
	assert.Equal(t, model.AssocTypeDecl(elem), ctx.Arena.Get(id).ResolvedAssocType())
	assert.False(t, ctx.Arena.Get(id).IsUnresolvedNested())
}

func TestCorrectTypo_RenamesUniqueClosestMatch(t *testing.T) {
	ctx := env.New(nil, nil, nil)
	root := ctx.Arena.AddGenericParameter(model.GenericParamKey{})
	proto := &fakeProto{name: "Collection", module: fakeModule{"Swift"}}
	elem := fakeAssoc{name: "Element", proto: proto, ordinal: 0}
	proto.assocs = []model.AssocTypeDecl{elem}
	ctx.Arena.EquivalenceClass(root).AddConformance(root, proto, ctx.Sources.ForExplicit(root, model.SourceLoc{}))

	child := ctx.Arena.NewNestedChild(root, "Elemnt") // typo
	ctx.UnresolvedNested++

	eq := &fakeEquator{}
	corrected := nested.CorrectTypo(ctx, eq, child)
	assert.True(t, corrected)
	assert.True(t, ctx.Arena.Get(child).Renamed())
	assert.Equal(t, "Element", ctx.Arena.Get(child).NestedName())
}
