package source

// IsInferred reports whether s or any ancestor is a floating-inferred
// root/derivation (KindInferred or KindInferredProtocolRequirement).
// Inferred facts are never diagnosed as redundant and are
// preferred as the representative constraint when several sources exist.
func (s *Source) IsInferred() bool {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.kind == KindInferred || cur.kind == KindInferredProtocolRequirement {
			return true
		}
	}
	return false
}

// IsDerived reports whether s itself (not an ancestor) represents an
// implied fact rather than one taken at face value: true for
// Nested/Parent/Super/Concrete/ReqSigSelf, and for ProtocolRequirement*
// unless its parent is ReqSigSelf.
func (s *Source) IsDerived() bool {
	switch s.kind {
	case KindNestedTypeNameMatch, KindParent, KindSuperclass, KindConcrete, KindRequirementSignatureSelf:
		return true
	case KindProtocolRequirement, KindInferredProtocolRequirement:
		return s.parent == nil || s.parent.kind != KindRequirementSignatureSelf
	default:
		return false
	}
}

// PathLength counts the KindProtocolRequirement/KindInferredProtocolRequirement
// nodes from s up to its root, inclusive of s itself. It is the measure
// Compare uses to prefer shorter derivation chains.
func (s *Source) PathLength() int {
	n := 0
	for cur := s; cur != nil; cur = cur.parent {
		if cur.kind == KindProtocolRequirement || cur.kind == KindInferredProtocolRequirement {
			n++
		}
	}
	return n
}

// Compare implements the total order used to pick a representative
// constraint: derived sources sort after non-derived ones, ties broken
// by shorter PathLength, remaining ties broken by construction order.
// The final tiebreak is deliberately arbitrary; this implementation
// pins it to insertion order rather than inventing new semantics.
func (s *Source) Compare(other *Source) int {
	if s == other {
		return 0
	}
	sd, od := s.IsDerived(), other.IsDerived()
	if sd != od {
		if sd {
			return 1
		}
		return -1
	}
	if sp, op := s.PathLength(), other.PathLength(); sp != op {
		return sp - op
	}
	return s.seq - other.seq
}

// Less reports whether s strictly precedes other in Compare's order;
// convenient for sort.Slice callers.
func (s *Source) Less(other *Source) bool { return s.Compare(other) < 0 }
