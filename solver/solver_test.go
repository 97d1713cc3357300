package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidiask/swift/env"
	"github.com/vidiask/swift/model"
	"github.com/vidiask/swift/solver"
)

type fakeModule struct{ path string }

func (m fakeModule) Path() string { return m.path }

type fakeProto struct {
	name string
	mod  fakeModule
}

func (p fakeProto) Name() string                         { return p.name }
func (p fakeProto) Module() model.ModuleRef               { return p.mod }
func (p fakeProto) InheritedProtocols() []model.ProtocolDecl { return nil }
func (p fakeProto) AssociatedTypes() []model.AssocTypeDecl   { return nil }
func (p fakeProto) TypeAliases() []model.TypeAliasDecl       { return nil }
func (p fakeProto) RequirementSignature() ([]model.ProtocolRequirement, bool) {
	return nil, true
}

type paramRef struct{ key model.GenericParamKey }

func (r paramRef) String() string                  { return r.key.String() }
func (r paramRef) ParamKey() model.GenericParamKey { return r.key }

type concreteType struct{ name string }

func (c concreteType) String() string { return c.name }

func TestSolver_AddConformance_RecordsOnRepresentative(t *testing.T) {
	ctx := env.New(nil, nil, nil)
	key := model.GenericParamKey{Depth: 0, Index: 0}
	ctx.Arena.AddGenericParameter(key)
	s := solver.New(ctx)

	proto := fakeProto{name: "Equatable", mod: fakeModule{"Swift"}}
	src := ctx.Sources.ForExplicit(0, model.SourceLoc{})

	result := s.AddConformance(paramRef{key}, proto, src)
	assert.Equal(t, model.Resolved, result)

	id, ok := ctx.Arena.LookupGenericParameter(key)
	require.True(t, ok)
	class := ctx.Arena.EquivalenceClass(id)
	assert.True(t, class.HasConformance(proto))
}

func TestSolver_AddSameType_UnionsTwoGenericParameters(t *testing.T) {
	ctx := env.New(nil, nil, nil)
	k0 := model.GenericParamKey{Depth: 0, Index: 0}
	k1 := model.GenericParamKey{Depth: 0, Index: 1}
	t0 := ctx.Arena.AddGenericParameter(k0)
	t1 := ctx.Arena.AddGenericParameter(k1)
	s := solver.New(ctx)

	src := ctx.Sources.ForExplicit(t0, model.SourceLoc{})
	result := s.AddSameType(t0, t1, src)
	assert.Equal(t, model.Resolved, result)
	assert.Equal(t, ctx.Arena.Representative(t0), ctx.Arena.Representative(t1))
}

func TestSolver_AddSameTypeRequirement_BindsConcreteType(t *testing.T) {
	ctx := env.New(nil, nil, nil)
	key := model.GenericParamKey{Depth: 0, Index: 0}
	ctx.Arena.AddGenericParameter(key)
	s := solver.New(ctx)

	src := ctx.Sources.ForExplicit(0, model.SourceLoc{})
	result := s.AddSameTypeRequirement(paramRef{key}, concreteType{"Int"}, src)
	assert.Equal(t, model.Resolved, result)

	id, _ := ctx.Arena.LookupGenericParameter(key)
	concrete, _, ok := ctx.Arena.EquivalenceClass(id).ConcreteType()
	require.True(t, ok)
	assert.Equal(t, concreteType{"Int"}, concrete)
}

func TestSolver_AddSameTypeRequirement_ConflictingConcreteTypesDiagnosed(t *testing.T) {
	ctx := env.New(nil, nil, nil)
	key := model.GenericParamKey{Depth: 0, Index: 0}
	ctx.Arena.AddGenericParameter(key)
	s := solver.New(ctx)

	src := ctx.Sources.ForExplicit(0, model.SourceLoc{})
	require.Equal(t, model.Resolved, s.AddSameTypeRequirement(paramRef{key}, concreteType{"Int"}, src))
	result := s.AddSameTypeRequirement(paramRef{key}, concreteType{"String"}, src)
	assert.Equal(t, model.Conflicting, result)
}

func TestSolver_AddLayout_ConflictReported(t *testing.T) {
	ctx := env.New(nil, nil, nil)
	key := model.GenericParamKey{Depth: 0, Index: 0}
	ctx.Arena.AddGenericParameter(key)
	s := solver.New(ctx)
	src := ctx.Sources.ForExplicit(0, model.SourceLoc{})

	require.Equal(t, model.Resolved, s.AddLayout(paramRef{key}, model.Layout{Kind: model.LayoutTrivial}, src))
	result := s.AddLayout(paramRef{key}, model.Layout{Kind: model.LayoutRefCountedObject}, src)
	assert.Equal(t, model.Conflicting, result)
}
