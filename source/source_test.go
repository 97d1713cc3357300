package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidiask/swift/model"
	"github.com/vidiask/swift/source"
)

type fakeProtocol struct{ name string }

func (p *fakeProtocol) Name() string                                  { return p.name }
func (p *fakeProtocol) Module() model.ModuleRef                       { return nil }
func (p *fakeProtocol) InheritedProtocols() []model.ProtocolDecl       { return nil }
func (p *fakeProtocol) AssociatedTypes() []model.AssocTypeDecl         { return nil }
func (p *fakeProtocol) TypeAliases() []model.TypeAliasDecl             { return nil }
func (p *fakeProtocol) RequirementSignature() ([]model.ProtocolRequirement, bool) {
	return nil, false
}

func TestArena_HashConsing(t *testing.T) {
	a := source.NewArena()
	s1 := a.ForExplicit(1, model.SourceLoc{File: "a.swift", Line: 3})
	s2 := a.ForExplicit(1, model.SourceLoc{File: "a.swift", Line: 3})
	assert.Same(t, s1, s2, "identical profiles must hash-cons to the same pointer")

	s3 := a.ForExplicit(1, model.SourceLoc{File: "a.swift", Line: 4})
	assert.NotSame(t, s1, s3, "differing location must not collapse")
}

func TestSource_IsDerived(t *testing.T) {
	a := source.NewArena()
	p := &fakeProtocol{name: "P"}

	explicit := a.ForExplicit(1, model.SourceLoc{})
	require.False(t, explicit.IsDerived())

	reqSig := a.ForRequirementSignature(1, p)
	assert.True(t, reqSig.IsDerived(), "ReqSigSelf is always derived")

	viaReqSig := a.ViaProtocolRequirement(reqSig, nil, p, false, model.SourceLoc{})
	assert.False(t, viaReqSig.IsDerived(), "ProtocolRequirement directly off ReqSigSelf is not derived")

	viaExplicit := a.ViaProtocolRequirement(explicit, nil, p, false, model.SourceLoc{})
	assert.True(t, viaExplicit.IsDerived(), "ProtocolRequirement off anything else is derived")
}

func TestSource_PathLength(t *testing.T) {
	a := source.NewArena()
	p := &fakeProtocol{name: "P"}
	explicit := a.ForExplicit(1, model.SourceLoc{})
	assert.Equal(t, 0, explicit.PathLength())

	step1 := a.ViaProtocolRequirement(explicit, nil, p, false, model.SourceLoc{})
	assert.Equal(t, 1, step1.PathLength())

	step2 := a.ViaProtocolRequirement(step1, nil, p, false, model.SourceLoc{})
	assert.Equal(t, 2, step2.PathLength())
}

func TestSource_CompareOrdersNonDerivedFirstThenShorterPath(t *testing.T) {
	a := source.NewArena()
	p := &fakeProtocol{name: "P"}
	explicit := a.ForExplicit(1, model.SourceLoc{})
	inferred := a.ForInferred(1, nil)
	derived := a.ForRequirementSignature(1, p)
	longer := a.ViaProtocolRequirement(a.ViaProtocolRequirement(explicit, nil, p, false, model.SourceLoc{}), nil, p, false, model.SourceLoc{})
	shorter := a.ViaProtocolRequirement(explicit, nil, p, false, model.SourceLoc{})

	assert.True(t, explicit.Less(derived))
	assert.True(t, inferred.Less(derived))
	assert.True(t, shorter.Less(longer))
}
