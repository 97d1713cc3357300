package nested

import (
	"github.com/vidiask/swift/env"
	"github.com/vidiask/swift/model"
)

// Substituter implements source.Substituter by decomposing a Self-relative
// dependent type one member at a time via GetNestedTypeByName, instead of
// requiring the host to hand the core an already-resolved PA. It is the
// "richer substituter" pa.Arena's own fallback implementation defers to.
type Substituter struct {
	ctx *env.Context
	eq  Equator
}

// NewSubstituter builds a Substituter bound to ctx, creating new nested
// PAs through eq's same-type entry points when a lookup along the way
// needs one materialized.
func NewSubstituter(ctx *env.Context, eq Equator) *Substituter {
	return &Substituter{ctx: ctx, eq: eq}
}

// NestedChild resolves (without creating, per source.Walk's replay
// contract) parent's child already bound to assoc.
func (s *Substituter) NestedChild(parent model.PAID, assoc model.AssocTypeDecl) (model.PAID, bool) {
	return GetNestedTypeForAssoc(s.ctx, s.eq, parent, assoc, ResolveExisting)
}

// ResolveMember decomposes member relative to base, recursing through
// Base() first when member is itself nested more than one level deep
// (e.g. "Self.Iterator.Element"). A TypeRepr that does not implement
// model.DependentMember cannot be decomposed by the core and resolution
// fails closed.
func (s *Substituter) ResolveMember(base model.PAID, member model.TypeRepr) (model.PAID, bool) {
	if member == nil {
		return base, true
	}
	dm, ok := member.(model.DependentMember)
	if !ok {
		return model.InvalidPAID, false
	}
	root := base
	if b := dm.Base(); b != nil {
		var ok2 bool
		root, ok2 = s.ResolveMember(base, b)
		if !ok2 {
			return model.InvalidPAID, false
		}
	}
	return GetNestedTypeByName(s.ctx, s.eq, root, dm.MemberName(), ResolveExisting)
}
