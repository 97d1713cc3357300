package nested

import (
	"sort"

	"github.com/vidiask/swift/env"
	"github.com/vidiask/swift/model"
	"github.com/vidiask/swift/pa"
	"github.com/vidiask/swift/source"
)

// UpdateKind selects how GetNestedType behaves when the requested name
// (or declaration) has no existing, already-resolved match.
type UpdateKind int

const (
	// ResolveExisting never creates a new PA; it only looks among
	// children already present.
	ResolveExisting UpdateKind = iota
	// AddIfMissing creates a child if nothing matches.
	AddIfMissing
	// AddIfBetterAnchor creates a child only if doing so would improve
	// the representative's canonical anchor for this name.
	AddIfBetterAnchor
)

// Equator is the narrow slice of the solver's same-type entry points
// nested-type discovery needs to equate a newly discovered anchor to a
// type-alias's underlying type or a concrete witness. nested never
// imports solver directly (solver imports nested to drive discovery);
// the caller (solver) satisfies this interface and passes itself in.
type Equator interface {
	AddSameType(a, b model.PAID, src *source.Source) model.ConstraintResult
	BindConcrete(subject model.PAID, t model.TypeRepr, src *source.Source) model.ConstraintResult
}

// GetNestedTypeByName resolves (or creates, per kind) the child of parent
// named name, running anchor discovery the first time a creating kind is
// asked for it.
func GetNestedTypeByName(ctx *env.Context, eq Equator, parent model.PAID, name string, kind UpdateKind) (model.PAID, bool) {
	rep := ctx.Arena.Representative(parent)
	if id, ok := bestExistingChild(ctx, rep, name); ok {
		return id, true
	}
	if kind == ResolveExisting {
		return model.InvalidPAID, false
	}
	return discoverAnchor(ctx, eq, rep, name, kind)
}

// GetNestedTypeForAssoc resolves (or creates/upgrades) the child of
// parent resolved specifically to assoc.
func GetNestedTypeForAssoc(ctx *env.Context, eq Equator, parent model.PAID, assoc model.AssocTypeDecl, kind UpdateKind) (model.PAID, bool) {
	rep := ctx.Arena.Representative(parent)
	for _, child := range ctx.Arena.Get(rep).Children(assoc.Name()) {
		if ctx.Arena.Get(child).ResolvedAssocType() == assoc {
			return child, true
		}
	}
	if kind == ResolveExisting {
		return model.InvalidPAID, false
	}
	id, existed := bestExistingChild(ctx, rep, assoc.Name())
	if !existed {
		id = ctx.Arena.NewNestedChild(rep, assoc.Name())
		ctx.UnresolvedNested++
	}
	upgradeToAssoc(ctx, id, assoc)
	EquateSiblingNesteds(ctx, eq, rep, assoc.Name())
	bindToParentConcreteWitness(ctx, eq, rep, assoc, id)
	return id, true
}

// GetNestedTypeForAlias resolves (or creates/upgrades) the child of
// parent resolved to alias, without running full anchor discovery (the
// caller already knows which alias it wants).
func GetNestedTypeForAlias(ctx *env.Context, eq Equator, parent model.PAID, alias model.TypeAliasDecl, kind UpdateKind) (model.PAID, bool) {
	rep := ctx.Arena.Representative(parent)
	for _, child := range ctx.Arena.Get(rep).Children(alias.Name()) {
		if ctx.Arena.Get(child).ResolvedAlias() == alias {
			return child, true
		}
	}
	if kind == ResolveExisting {
		return model.InvalidPAID, false
	}
	id, existed := bestExistingChild(ctx, rep, alias.Name())
	if !existed {
		id = ctx.Arena.NewNestedChild(rep, alias.Name())
		ctx.UnresolvedNested++
	}
	if ctx.Arena.Get(id).IsUnresolvedNested() {
		ctx.UnresolvedNested--
	}
	ctx.Arena.ResolveToAlias(id, alias)
	EquateSiblingNesteds(ctx, eq, rep, alias.Name())
	return id, true
}

// bestExistingChild picks the canonically-least already-present child of
// rep named name, if any.
func bestExistingChild(ctx *env.Context, rep model.PAID, name string) (model.PAID, bool) {
	children := ctx.Arena.Get(rep).Children(name)
	if len(children) == 0 {
		return model.InvalidPAID, false
	}
	best := children[0]
	for _, c := range children[1:] {
		if pa.CanonicalOrder(ctx.Arena, c, best) {
			best = c
		}
	}
	return best, true
}

func upgradeToAssoc(ctx *env.Context, id model.PAID, assoc model.AssocTypeDecl) {
	if ctx.Arena.Get(id).IsUnresolvedNested() {
		ctx.UnresolvedNested--
	}
	ctx.Arena.ResolveToAssocType(id, assoc)
}

// discoverAnchor performs anchor discovery: scan every protocol rep
// conforms to for members named name, pick the best associated-type
// candidate, fold in same-name type-aliases, and (for AddIfBetterAnchor)
// only actually create a PA when doing so improves the canonical anchor.
func discoverAnchor(ctx *env.Context, eq Equator, rep model.PAID, name string, kind UpdateKind) (model.PAID, bool) {
	class := ctx.Arena.EquivalenceClass(rep)
	bestAssoc, aliases := candidateMembers(class.Protocols(), name)
	if bestAssoc == nil && len(aliases) == 0 {
		if kind != AddIfMissing {
			return model.InvalidPAID, false
		}
		id := ctx.Arena.NewNestedChild(rep, name)
		ctx.UnresolvedNested++
		return id, true
	}

	id, existed := bestExistingChild(ctx, rep, name)
	if !existed {
		id = ctx.Arena.NewNestedChild(rep, name)
		ctx.UnresolvedNested++
	}
	if bestAssoc != nil {
		upgradeToAssoc(ctx, id, bestAssoc)
	}

	subst := NewSubstituter(ctx, eq)
	for _, alias := range aliases {
		underlying := alias.Underlying()
		src := ctx.Sources.ForNestedTypeNameMatch(rep)
		if resolved, ok := subst.ResolveMember(rep, underlying); ok {
			eq.AddSameType(id, resolved, src)
		} else {
			eq.BindConcrete(id, underlying, src)
		}
	}

	EquateSiblingNesteds(ctx, eq, rep, name)
	if bestAssoc != nil {
		bindToParentConcreteWitness(ctx, eq, rep, bestAssoc, id)
	}
	return id, true
}

// candidateMembers scans protocols (already the representative's full
// conformance set) for every associated-type/type-alias declared with
// name, applying the module-compatibility quirk to aliases: a
// type-alias whose parent module differs from the protocol's own module
// is dropped.
func candidateMembers(protocols []model.ProtocolDecl, name string) (model.AssocTypeDecl, []model.TypeAliasDecl) {
	sorted := append([]model.ProtocolDecl(nil), protocols...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name() < sorted[j].Name() })

	var best model.AssocTypeDecl
	var aliases []model.TypeAliasDecl
	for _, proto := range sorted {
		for _, at := range proto.AssociatedTypes() {
			if at.Name() != name {
				continue
			}
			if best == nil || at.Ordinal() < best.Ordinal() {
				best = at
			}
		}
		for _, ta := range proto.TypeAliases() {
			if ta.Name() != name {
				continue
			}
			if ta.Protocol() != nil && ta.Module() != nil && proto.Module() != nil &&
				ta.Module().Path() != proto.Module().Path() {
				continue // compatibility quirk
			}
			aliases = append(aliases, ta)
		}
	}
	return best, aliases
}

// EquateSiblingNesteds maintains the invariant that same-named nesteds
// within an equivalence class are co-equivalent: whenever a new nested
// PA is created under a non-representative member, a same-type edge to
// the corresponding nested PA of the representative is also added. It
// also backs the same-type merge step after a union: called again on
// the merged class, it equates every same-named child across every
// member.
func EquateSiblingNesteds(ctx *env.Context, eq Equator, rep model.PAID, name string) {
	class := ctx.Arena.EquivalenceClass(rep)
	var anchor model.PAID
	hasAnchor := false
	for _, member := range class.Members() {
		for _, child := range ctx.Arena.Get(member).Children(name) {
			if !hasAnchor {
				anchor, hasAnchor = child, true
				continue
			}
			if ctx.Arena.Representative(child) == ctx.Arena.Representative(anchor) {
				continue
			}
			eq.AddSameType(anchor, child, ctx.Sources.ForNestedTypeNameMatch(rep))
		}
	}
}

// bindToParentConcreteWitness: when the parent has a concrete type,
// every newly created nested PA is immediately bound to the
// corresponding concrete witness, sourced Concrete->Parent.
func bindToParentConcreteWitness(ctx *env.Context, eq Equator, rep model.PAID, assoc model.AssocTypeDecl, child model.PAID) {
	concreteType, concreteSrc, ok := ctx.Arena.EquivalenceClass(rep).ConcreteType()
	if !ok || ctx.LookupConformance == nil {
		return
	}
	conf, ok := ctx.LookupConformance(nil, concreteType, assoc.Protocol())
	if !ok {
		return
	}
	witness, ok := conf.AssociatedTypeWitness(assoc)
	if !ok {
		return
	}
	src := ctx.Sources.ViaParent(ctx.Sources.ViaConcrete(concreteSrc, conf), assoc)
	eq.BindConcrete(child, witness, src)
}
