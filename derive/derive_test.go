package derive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidiask/swift/derive"
	"github.com/vidiask/swift/model"
	"github.com/vidiask/swift/pa"
	"github.com/vidiask/swift/source"
)

type fakeModule struct{ path string }

func (m fakeModule) Path() string { return m.path }

type fakeProto struct{ name string }

func (p fakeProto) Name() string                          { return p.name }
func (p fakeProto) Module() model.ModuleRef                { return fakeModule{"Swift"} }
func (p fakeProto) InheritedProtocols() []model.ProtocolDecl { return nil }
func (p fakeProto) AssociatedTypes() []model.AssocTypeDecl    { return nil }
func (p fakeProto) TypeAliases() []model.TypeAliasDecl        { return nil }
func (p fakeProto) RequirementSignature() ([]model.ProtocolRequirement, bool) {
	return nil, true
}

type fakeConf struct{ proto fakeProto }

func (c fakeConf) Protocol() model.ProtocolDecl     { return c.proto }
func (c fakeConf) ConcreteType() model.TypeRepr     { return nil }
func (c fakeConf) AssociatedTypeWitness(model.AssocTypeDecl) (model.TypeRepr, bool) {
	return nil, false
}

func TestFilter_DerivedViaConcreteThinnedToSoleSurvivorWhenNoDirectWitness(t *testing.T) {
	srcArena := source.NewArena()
	arena := pa.NewArena(srcArena)
	key := model.GenericParamKey{Depth: 0, Index: 0}
	root := arena.AddGenericParameter(key)
	proto := fakeProto{"Equatable"}

	class := arena.EquivalenceClass(root)
	explicit := srcArena.ForExplicit(root, model.SourceLoc{})
	// The concrete binding makes root a concrete PA, so viaConcrete is
	// derived via concrete.
	class.AddConcrete(root, fakeType{"Int"}, explicit)
	viaConcrete := srcArena.ViaConcrete(explicit, fakeConf{proto})
	class.AddConformance(root, proto, viaConcrete)

	derive.Filter(arena, arena, nil)

	constraints := arena.EquivalenceClass(root).Conformances(proto)
	require.Len(t, constraints, 1)
	assert.Equal(t, viaConcrete, constraints[0].Source)
}

func TestFilter_DerivedViaConcreteDroppedWhenDirectWitnessSurvives(t *testing.T) {
	srcArena := source.NewArena()
	arena := pa.NewArena(srcArena)
	key := model.GenericParamKey{Depth: 0, Index: 0}
	root := arena.AddGenericParameter(key)
	proto := fakeProto{"Equatable"}

	class := arena.EquivalenceClass(root)
	explicit := srcArena.ForExplicit(root, model.SourceLoc{})
	direct := srcArena.ForExplicit(root, model.SourceLoc{File: "a.swift", Line: 1})
	// The concrete binding makes root a concrete PA, so viaConcrete is
	// derived via concrete.
	class.AddConcrete(root, fakeType{"Int"}, explicit)
	viaConcrete := srcArena.ViaConcrete(explicit, fakeConf{proto})
	class.AddConformance(root, proto, direct)
	class.AddConformance(root, proto, viaConcrete)

	derive.Filter(arena, arena, nil)

	constraints := arena.EquivalenceClass(root).Conformances(proto)
	require.Len(t, constraints, 1)
	assert.Equal(t, direct, constraints[0].Source)
}

func TestFilter_SameTypeSelfDerivedThroughNestedParentIsDropped(t *testing.T) {
	srcArena := source.NewArena()
	arena := pa.NewArena(srcArena)
	key := model.GenericParamKey{Depth: 0, Index: 0}
	root := arena.AddGenericParameter(key)
	child := arena.NewNestedChild(root, "Element")

	class := arena.EquivalenceClass(root)
	rootSrc := srcArena.ForAbstract(root)
	assoc := fakeAssocDecl{"Element"}
	nestedSrc := srcArena.ViaParent(rootSrc, assoc)
	class.AddSameType(root, child, nestedSrc)

	derive.Filter(arena, arena, nil)

	assert.Empty(t, arena.EquivalenceClass(root).SameTypeEdges(root))
}

type fakeType struct{ name string }

func (f fakeType) String() string { return f.name }

type fakeAssocDecl struct{ name string }

func (a fakeAssocDecl) Name() string                   { return a.name }
func (a fakeAssocDecl) Protocol() model.ProtocolDecl   { return fakeProto{"Sequence"} }
func (a fakeAssocDecl) Ordinal() int                   { return 0 }
