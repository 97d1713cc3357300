package source

import "github.com/vidiask/swift/model"

// Host is the narrow view of the potential-archetype graph that Walk and
// the self-derivation checks need. It is satisfied by an adapter over
// *pa.Arena; source never imports pa (that import would cycle, since pa
// stores *Source values on every constraint) so Host stays an interface.
type Host interface {
	// Representative returns id's union-find representative.
	Representative(id model.PAID) model.PAID
	// IsNestedAncestor reports whether ancestor is present on descendant's
	// nested-parent chain (used by the same-type self-derivation check,
	// which compares the two PAs' representatives itself).
	IsNestedAncestor(ancestor, descendant model.PAID) bool
	// IsConcrete reports whether id's equivalence class already has a
	// recorded concrete type (used for derivedViaConcrete detection).
	IsConcrete(id model.PAID) bool
}

// Substituter resolves the nested-type lookups a Walk performs when it
// crosses a KindParent or KindProtocolRequirement* node.
type Substituter interface {
	// NestedChild looks up (never creates) the nested PA of parent
	// resolved to assoc.
	NestedChild(parent model.PAID, assoc model.AssocTypeDecl) (model.PAID, bool)
	// ResolveMember decomposes a Self-relative dependent type (e.g.
	// "Self.Element") into nested-type lookups starting at base, and
	// returns the PA it denotes. member == nil means Self itself (base
	// is returned unchanged).
	ResolveMember(base model.PAID, member model.TypeRepr) (model.PAID, bool)
}

// chain returns s's ancestor chain from the ultimate root (index 0) down
// to s itself (last index), by walking parent pointers and reversing.
func (s *Source) chain() []*Source {
	var rev []*Source
	for cur := s; cur != nil; cur = cur.parent {
		rev = append(rev, cur)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// Walk replays s's derivation from its root to itself, resolving the PA
// it ultimately affects: walking from root to leaf, substituting at
// each Parent the associated type into the parent PA's nested lookup,
// and at each ProtocolRequirement* the stored dependent type. The walk
// visits each intermediate PA; if the visitor returns true, the walk
// short-circuits.
//
// Walk returns the final PA (or the one visited when the visitor
// short-circuited) and whether it short-circuited.
func (s *Source) Walk(subst Substituter, visit func(model.PAID) (stop bool)) (model.PAID, bool) {
	nodes := s.chain()
	if len(nodes) == 0 {
		return model.InvalidPAID, false
	}
	cur := nodes[0].root
	if visit(cur) {
		return cur, true
	}
	for _, node := range nodes[1:] {
		switch node.kind {
		case KindParent:
			if next, ok := subst.NestedChild(cur, node.assoc); ok {
				cur = next
			}
		case KindProtocolRequirement, KindInferredProtocolRequirement:
			if next, ok := subst.ResolveMember(cur, node.typeRepr); ok {
				cur = next
			}
		case KindSuperclass, KindConcrete, KindRequirementSignatureSelf, KindNestedTypeNameMatch, KindAbstract, KindExplicit, KindInferred:
			// These re-derive a fact about the same PA; the walk does not
			// move to a different node.
		}
		if visit(cur) {
			return cur, true
		}
	}
	return cur, false
}

// IsSelfDerivedConformance implements the conformance half of the
// self-derivation rule: its walk revisits (via protocol requirements on
// the same protocol) the same (representative-PA, protocol) pair twice.
// Only meaningful for derived sources; non-derived sources are never
// self-derived.
func (s *Source) IsSelfDerivedConformance(host Host, subst Substituter) bool {
	if !s.IsDerived() {
		return false
	}
	type visitedKey struct {
		rep      model.PAID
		protocol model.ProtocolDecl
	}
	seen := make(map[visitedKey]bool)
	nodes := s.chain()
	cur := model.InvalidPAID
	if len(nodes) > 0 {
		cur = nodes[0].root
	}
	for _, node := range nodes {
		switch node.kind {
		case KindParent:
			if next, ok := subst.NestedChild(cur, node.assoc); ok {
				cur = next
			}
		case KindProtocolRequirement, KindInferredProtocolRequirement:
			if next, ok := subst.ResolveMember(cur, node.typeRepr); ok {
				cur = next
			}
			if node.protocol != nil {
				key := visitedKey{rep: host.Representative(cur), protocol: node.protocol}
				if seen[key] {
					return true
				}
				seen[key] = true
			}
		}
	}
	return false
}

// IsSelfDerivedSameType implements the same-type half of the
// self-derivation rule: the walk's root PA is already an ancestor (in
// the nested-parent chain) of the subject in the same equivalence class.
func (s *Source) IsSelfDerivedSameType(host Host, subst Substituter, subjectPA model.PAID) bool {
	if !s.IsDerived() {
		return false
	}
	rootPA := s.chain()[0].root
	if host.Representative(rootPA) != host.Representative(subjectPA) {
		return false
	}
	return host.IsNestedAncestor(rootPA, subjectPA)
}

// DerivedViaConcrete reports whether s's derivation passes through a PA
// that already has a concrete-type binding at the point of any
// intermediate visit except the final one.
func (s *Source) DerivedViaConcrete(host Host, subst Substituter) bool {
	nodes := s.chain()
	if len(nodes) < 2 {
		return false
	}
	cur := nodes[0].root
	for i, node := range nodes {
		if i == len(nodes)-1 {
			break // the final PA is the subject itself, not an intermediate.
		}
		switch node.kind {
		case KindParent:
			if next, ok := subst.NestedChild(cur, node.assoc); ok {
				cur = next
			}
		case KindProtocolRequirement, KindInferredProtocolRequirement:
			if next, ok := subst.ResolveMember(cur, node.typeRepr); ok {
				cur = next
			}
		}
		if host.IsConcrete(cur) {
			return true
		}
	}
	return false
}
