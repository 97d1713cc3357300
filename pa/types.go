package pa

import (
	"github.com/vidiask/swift/model"
)

// PA is one node of the potential-archetype forest. Fields are private:
// all mutation goes through Arena so invariants (union-find consistency,
// class membership) stay centralized.
type PA struct {
	id model.PAID

	// --- identity -----------------------------------------------------
	isRoot   bool
	paramKey model.GenericParamKey // valid iff isRoot

	parent     model.PAID // nested parent PA; InvalidPAID iff isRoot
	nestedName string     // valid iff !isRoot

	resolvedAssoc model.AssocTypeDecl // non-nil once resolved to an associated type
	resolvedAlias model.TypeAliasDecl // non-nil iff this PA denotes a type-alias resolution

	// children maps a nested name to every PA created under this node
	// with that name, in creation order — multiple children with the
	// same name may coexist before they are equated.
	children map[string][]model.PAID

	// --- union-find -----------------------------------------------------
	ufParent model.PAID // self iff this PA is a representative

	// --- flags -------------------------------------------------
	recursiveConcrete   bool
	recursiveSuperclass bool
	invalid             bool
	renamed             bool
	originalName        string
}

// ID returns the PA's stable arena index.
func (p *PA) ID() model.PAID { return p.id }

// IsRoot reports whether p is bound directly to a generic parameter.
func (p *PA) IsRoot() bool { return p.isRoot }

// ParamKey returns the generic parameter key p is bound to. Panics (a
// programmer-error invariant violation) if p is not a root.
func (p *PA) ParamKey() model.GenericParamKey {
	invariant(p.isRoot, "ParamKey() called on a nested PA")
	return p.paramKey
}

// Parent returns the nested parent PA. Panics if p is a root.
func (p *PA) Parent() model.PAID {
	invariant(!p.isRoot, "Parent() called on a root PA")
	return p.parent
}

// NestedName returns the member name p was created under its parent
// with. Panics if p is a root.
func (p *PA) NestedName() string {
	invariant(!p.isRoot, "NestedName() called on a root PA")
	return p.nestedName
}

// DisplayName returns the remembered original name if p was renamed by
// typo correction, otherwise the current nested name.
func (p *PA) DisplayName() string {
	if p.renamed {
		return p.originalName
	}
	return p.nestedName
}

// ResolvedAssocType returns the associated-type declaration p resolves
// to, or nil if p is still an unresolved nested PA.
func (p *PA) ResolvedAssocType() model.AssocTypeDecl { return p.resolvedAssoc }

// ResolvedAlias returns the type-alias declaration p resolves to, or nil
// if p is not an alias resolution.
func (p *PA) ResolvedAlias() model.TypeAliasDecl { return p.resolvedAlias }

// IsUnresolvedNested reports whether p is a nested PA with no
// associated-type or alias resolution yet.
func (p *PA) IsUnresolvedNested() bool {
	return !p.isRoot && p.resolvedAssoc == nil && p.resolvedAlias == nil
}

// IsRepresentative reports whether p is currently the union-find root of
// its class (ownership of the EquivalenceClass, if any, lives here).
func (p *PA) IsRepresentative() bool { return p.ufParent == p.id }

// RecursiveConcrete reports the flag set by finalize's recursion
// detection when p's concrete type refers back to p itself.
func (p *PA) RecursiveConcrete() bool { return p.recursiveConcrete }

// RecursiveSuperclass reports the analogous flag for superclass bounds.
func (p *PA) RecursiveSuperclass() bool { return p.recursiveSuperclass }

// Invalid reports whether p has been marked unusable (its resolution
// replaced by an error type after a diagnosed recursion).
func (p *PA) Invalid() bool { return p.invalid }

// Renamed reports whether typo correction renamed p.
func (p *PA) Renamed() bool { return p.renamed }

// Children returns the nested PAs created under p with the given name,
// in creation order (possibly more than one before they are equated).
func (p *PA) Children(name string) []model.PAID {
	return append([]model.PAID(nil), p.children[name]...)
}

// AllChildNames returns every nested name p has at least one child
// under, in map order (callers needing determinism should sort).
func (p *PA) AllChildNames() []string {
	names := make([]string, 0, len(p.children))
	for name := range p.children {
		names = append(names, name)
	}
	return names
}
