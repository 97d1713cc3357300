// Package testsupport holds small test doubles shared across package
// test suites (model.TypeRepr/ProtocolDecl/LazyResolver fakes), so every
// package's _test.go doesn't redefine the same handful of shapes.
package testsupport

import "github.com/vidiask/swift/model"

// Module is a minimal model.ModuleRef.
type Module struct{ PathValue string }

func (m Module) Path() string { return m.PathValue }

// ParamRef is a minimal model.GenericParamRef over a bare generic
// parameter key, the TypeRepr shape most requirement subjects start as.
type ParamRef struct{ Key model.GenericParamKey }

func (r ParamRef) String() string                  { return r.Key.String() }
func (r ParamRef) ParamKey() model.GenericParamKey { return r.Key }

// ConcreteType is a minimal, name-only model.TypeRepr standing in for an
// already-concrete type (e.g. "Int") in tests that never inspect it
// beyond identity and rendering.
type ConcreteType struct{ Name string }

func (c ConcreteType) String() string { return c.Name }

// Member is a minimal model.DependentMember, for tests that need a
// Self-relative dependent type (e.g. "Self.Element").
type Member struct {
	BaseType model.TypeRepr
	Name     string
}

func (m Member) String() string {
	if m.BaseType == nil {
		return "Self." + m.Name
	}
	return m.BaseType.String() + "." + m.Name
}
func (m Member) Base() model.TypeRepr { return m.BaseType }
func (m Member) MemberName() string   { return m.Name }

// Protocol is a field-backed model.ProtocolDecl: each method returns the
// matching field, and RequirementSignature reports Reqs as computed only
// when Computed is set. Its slice fields make the struct non-comparable,
// while the core keys maps by model.ProtocolDecl, so pass it by pointer
// (&Protocol{...}).
type Protocol struct {
	NameValue   string
	ModuleValue model.ModuleRef
	Inherited   []model.ProtocolDecl
	Assoc       []model.AssocTypeDecl
	Aliases     []model.TypeAliasDecl
	Reqs        []model.ProtocolRequirement
	Computed    bool
}

func (p Protocol) Name() string                         { return p.NameValue }
func (p Protocol) Module() model.ModuleRef               { return p.ModuleValue }
func (p Protocol) InheritedProtocols() []model.ProtocolDecl { return p.Inherited }
func (p Protocol) AssociatedTypes() []model.AssocTypeDecl   { return p.Assoc }
func (p Protocol) TypeAliases() []model.TypeAliasDecl       { return p.Aliases }
func (p Protocol) RequirementSignature() ([]model.ProtocolRequirement, bool) {
	return p.Reqs, p.Computed
}

// Resolver is a table-driven model.LazyResolver: each method looks up
// its argument in a map and falls back to a documented zero-value.
type Resolver struct {
	Signatures  map[model.ProtocolDecl][]model.ProtocolRequirement
	Inherited   map[model.ProtocolDecl][]model.ProtocolDecl
	Inheritance map[model.ProtocolDecl][]model.TypeRepr
}

func (r Resolver) ResolveDeclSignature(decl model.ProtocolDecl) ([]model.ProtocolRequirement, bool) {
	reqs, ok := r.Signatures[decl]
	return reqs, ok
}

func (r Resolver) ResolveInheritedProtocols(protocol model.ProtocolDecl) []model.ProtocolDecl {
	return r.Inherited[protocol]
}

func (r Resolver) ResolveInheritanceClause(decl model.ProtocolDecl) []model.TypeRepr {
	return r.Inheritance[decl]
}
