package source

import (
	"fmt"

	"github.com/vidiask/swift/model"
)

// Kind discriminates the tagged sum of requirement-source variants.
// Kind values are never exposed for switching outside this package's
// own derivation logic; callers use the Is*/PathLength/Compare queries
// instead.
type Kind int

const (
	// KindAbstract is a placeholder root carrying no provenance, used for
	// a generic parameter before any requirement establishes a fact about it.
	KindAbstract Kind = iota
	// KindExplicit is a root for a written `where`-clause requirement.
	KindExplicit
	// KindInferred is a root for a requirement discovered by walking a
	// bound generic type.
	KindInferred
	// KindRequirementSignatureSelf is a root for Self's own membership in
	// a protocol's requirement signature.
	KindRequirementSignatureSelf
	// KindNestedTypeNameMatch is a root for the implicit same-type edge
	// between equally-named nested PAs within one equivalence class.
	KindNestedTypeNameMatch

	// KindProtocolRequirement is derived: a requirement drawn from a
	// protocol's requirement signature, substituted into a conformance.
	KindProtocolRequirement
	// KindInferredProtocolRequirement is the inferred-floating variant of
	// the above (never diagnosed as redundant; preferred as representative).
	KindInferredProtocolRequirement
	// KindSuperclass is derived: a conformance re-derived because the
	// subject's superclass bound already conforms.
	KindSuperclass
	// KindConcrete is derived: a conformance or same-type re-derived
	// because the subject's concrete-type witness already satisfies it.
	KindConcrete
	// KindParent is derived: a nested PA's relationship to its parent via
	// a specific associated-type declaration.
	KindParent
)

func (k Kind) String() string {
	switch k {
	case KindAbstract:
		return "abstract"
	case KindExplicit:
		return "explicit"
	case KindInferred:
		return "inferred"
	case KindRequirementSignatureSelf:
		return "requirement-signature-self"
	case KindNestedTypeNameMatch:
		return "nested-type-name-match"
	case KindProtocolRequirement:
		return "protocol-requirement"
	case KindInferredProtocolRequirement:
		return "inferred-protocol-requirement"
	case KindSuperclass:
		return "superclass"
	case KindConcrete:
		return "concrete"
	case KindParent:
		return "parent"
	default:
		return "unknown-source-kind"
	}
}

// Source is one node of the hash-consed requirement-source DAG.
// Instances are only ever produced by an Arena's factory methods, which
// guarantee that two constructions with the same profile return the same
// pointer.
type Source struct {
	kind     Kind
	parent   *Source // nil for root kinds
	root     model.PAID
	loc      model.SourceLoc
	typeRepr model.TypeRepr
	protocol model.ProtocolDecl
	conf     model.Conformance
	assoc    model.AssocTypeDecl

	// seq is the construction order, used only as the documented-arbitrary
	// final tiebreak in Compare.
	seq int
}

// Kind exposes the discriminant for packages that need to branch on it
// during Walk/derivation (derive, finalize); ordinary callers should
// prefer the Is*/PathLength/Compare queries.
func (s *Source) Kind() Kind { return s.kind }

// Root returns the PA a root source is anchored to, and whether s is a
// root kind at all.
func (s *Source) Root() (model.PAID, bool) {
	if s.parent == nil {
		return s.root, true
	}
	return model.InvalidPAID, false
}

// Parent returns the source this one was derived from, or nil for roots.
func (s *Source) Parent() *Source { return s.parent }

// Loc returns the written source location, if any (explicit and
// protocol-requirement sources carry one).
func (s *Source) Loc() model.SourceLoc { return s.loc }

// Protocol returns the protocol this source names, for kinds that carry
// one (RequirementSignatureSelf, ProtocolRequirement*).
func (s *Source) Protocol() model.ProtocolDecl { return s.protocol }

// Conformance returns the witness this source re-derives from, for
// KindSuperclass/KindConcrete.
func (s *Source) Conformance() model.Conformance { return s.conf }

// AssocType returns the associated-type declaration this KindParent
// source crosses.
func (s *Source) AssocType() model.AssocTypeDecl { return s.assoc }

// TypeRepr returns the stored dependent type for KindInferred and
// KindProtocolRequirement*.
func (s *Source) TypeRepr() model.TypeRepr { return s.typeRepr }

func (s *Source) String() string {
	if s.parent == nil {
		return fmt.Sprintf("%s(root=%d)", s.kind, s.root)
	}
	return fmt.Sprintf("%s <- %s", s.kind, s.parent)
}

// profile is the hash-cons key. It must stay a comparable struct: every
// field holds either a value type or an interface backed by a comparable
// (typically pointer) concrete type supplied by the host compiler.
type profile struct {
	kind     Kind
	parent   *Source
	root     model.PAID
	loc      model.SourceLoc
	typeRepr model.TypeRepr
	protocol model.ProtocolDecl
	conf     model.Conformance
	assoc    model.AssocTypeDecl
}

// Arena owns the hash-consed set of all Sources created for one builder.
// It is not safe for concurrent use, matching the builder's single-owner
// concurrency model.
type Arena struct {
	table map[profile]*Source
	seq   int
}

// NewArena allocates an empty requirement-source arena.
func NewArena() *Arena {
	return &Arena{table: make(map[profile]*Source, 64)}
}

// intern returns the canonical Source for p, creating and storing one on
// first occurrence.
func (a *Arena) intern(p profile) *Source {
	if existing, ok := a.table[p]; ok {
		return existing
	}
	s := &Source{
		kind:     p.kind,
		parent:   p.parent,
		root:     p.root,
		loc:      p.loc,
		typeRepr: p.typeRepr,
		protocol: p.protocol,
		conf:     p.conf,
		assoc:    p.assoc,
		seq:      a.seq,
	}
	a.seq++
	a.table[p] = s
	return s
}

// ForAbstract returns the placeholder root source for a freshly declared
// generic parameter PA.
func (a *Arena) ForAbstract(root model.PAID) *Source {
	return a.intern(profile{kind: KindAbstract, root: root})
}

// ForExplicit returns the root source for a written `where`-clause
// requirement on root, optionally carrying its source location.
func (a *Arena) ForExplicit(root model.PAID, loc model.SourceLoc) *Source {
	return a.intern(profile{kind: KindExplicit, root: root, loc: loc})
}

// ForInferred returns the root source for a requirement inferred while
// walking t, a bound generic type containing root.
func (a *Arena) ForInferred(root model.PAID, t model.TypeRepr) *Source {
	return a.intern(profile{kind: KindInferred, root: root, typeRepr: t})
}

// ForRequirementSignature returns the root source for root's own
// membership in protocol's requirement signature.
func (a *Arena) ForRequirementSignature(root model.PAID, protocol model.ProtocolDecl) *Source {
	return a.intern(profile{kind: KindRequirementSignatureSelf, root: root, protocol: protocol})
}

// ForNestedTypeNameMatch returns the root source for the implicit
// same-type edge between equally-named nested PAs of root's class.
func (a *Arena) ForNestedTypeNameMatch(root model.PAID) *Source {
	return a.intern(profile{kind: KindNestedTypeNameMatch, root: root})
}

// ViaProtocolRequirement derives a source from parent by substituting
// storedType (the requirement's Self-relative subject, or nil for Self
// itself) for protocol's own requirement signature entry. inferred marks
// the InferredProtocolRequirement variant.
func (a *Arena) ViaProtocolRequirement(parent *Source, storedType model.TypeRepr, protocol model.ProtocolDecl, inferred bool, loc model.SourceLoc) *Source {
	kind := KindProtocolRequirement
	if inferred {
		kind = KindInferredProtocolRequirement
	}
	return a.intern(profile{kind: kind, parent: parent, typeRepr: storedType, protocol: protocol, loc: loc})
}

// ViaSuperclass derives a conformance source from parent, re-derived
// because the subject's superclass bound conforms per conf.
func (a *Arena) ViaSuperclass(parent *Source, conf model.Conformance) *Source {
	return a.intern(profile{kind: KindSuperclass, parent: parent, conf: conf})
}

// ViaConcrete derives a conformance or same-type source from parent,
// re-derived because the subject's concrete-type witness satisfies it
// per conf.
func (a *Arena) ViaConcrete(parent *Source, conf model.Conformance) *Source {
	return a.intern(profile{kind: KindConcrete, parent: parent, conf: conf})
}

// ViaParent derives a nested-PA source from parent, crossing assoc's
// associated-type declaration.
func (a *Arena) ViaParent(parent *Source, assoc model.AssocTypeDecl) *Source {
	return a.intern(profile{kind: KindParent, parent: parent, assoc: assoc})
}

// Len reports how many distinct sources have been interned.
func (a *Arena) Len() int { return len(a.table) }
