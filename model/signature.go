package model

import "strings"

// ArchetypeRef names an archetype by its canonical path rather than by
// any internal node identity, so a GenericSignature is self-contained
// and comparable after the builder that produced it is gone: a root
// generic parameter key, followed by the chain of member names walked
// to reach a nested archetype.
type ArchetypeRef struct {
	Root GenericParamKey
	Path []string
}

func (r ArchetypeRef) String() string {
	if len(r.Path) == 0 {
		return r.Root.String()
	}
	return r.Root.String() + "." + strings.Join(r.Path, ".")
}

// ResolvedRequirement is one canonicalized, minimal fact in a finished
// GenericSignature, the result of canonical enumeration and signature
// emission. Exactly the fields relevant to Kind are meaningful; the
// rest are zero.
type ResolvedRequirement struct {
	Kind    RequirementKind
	Subject ArchetypeRef

	// Protocol is set for RequirementConformance.
	Protocol ProtocolDecl
	// Superclass/Concrete type is set for RequirementSuperclass and the
	// concrete-type same-type case; RHS of a same-type between two
	// archetypes is carried in Other instead.
	Type TypeRepr
	// Other is the right-hand archetype of a same-type requirement
	// between two archetypes (anchor-to-anchor or anchor-to-next-anchor).
	Other    ArchetypeRef
	HasOther bool
	// Layout is set for RequirementLayout.
	Layout Layout

	Loc SourceLoc
}

// GenericSignature is the canonical, minimal, conflict-diagnosed output
// of Builder.Finalize: an ordered list of resolved requirements, sorted
// the way canonical enumeration produces them (representative order,
// then protocol order within a class).
type GenericSignature struct {
	Requirements []ResolvedRequirement
}
