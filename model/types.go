package model

import "fmt"

// PAID identifies a potential archetype within a single builder's arena.
// IDs are assigned monotonically and are never reused; they are only
// meaningful together with the arena that minted them.
type PAID int

// InvalidPAID marks the absence of a potential archetype.
const InvalidPAID PAID = -1

// GenericParamKey is a (depth, index) pair identifying a generic parameter
// in the host compiler's generic parameter list. Keys are totally
// ordered, compared lexicographically by depth first, then index.
type GenericParamKey struct {
	Depth int
	Index int
}

// Less implements the total lexicographic order over generic parameter keys.
func (k GenericParamKey) Less(other GenericParamKey) bool {
	if k.Depth != other.Depth {
		return k.Depth < other.Depth
	}
	return k.Index < other.Index
}

func (k GenericParamKey) String() string {
	return fmt.Sprintf("τ_%d_%d", k.Depth, k.Index)
}

// ModuleRef identifies the module (compilation unit) a declaration
// belongs to. Only equality and a display path are required by the core;
// module lookup and loading live entirely in the host compiler.
type ModuleRef interface {
	// Path returns a stable, comparable identifier for the module.
	Path() string
}

// TypeRepr is an opaque reference to a type as understood by the host
// type system. The core never inspects its structure directly; it is
// passed back to LookupConformance, substitution helpers, and the
// diagnostics sink for rendering.
type TypeRepr interface {
	// String renders the type for diagnostics.
	String() string
}

// ProtocolDecl is a reference to a protocol declaration.
type ProtocolDecl interface {
	// Name is the protocol's simple name, used for canonical sorting.
	Name() string
	// Module is the protocol's owning module (used by the type-alias
	// compatibility quirk in nested-type discovery).
	Module() ModuleRef
	// InheritedProtocols lists protocols this protocol directly refines.
	InheritedProtocols() []ProtocolDecl
	// AssociatedTypes lists the associated-type declarations directly
	// declared in this protocol (not inherited).
	AssociatedTypes() []AssocTypeDecl
	// TypeAliases lists the type-alias declarations directly declared in
	// this protocol that might satisfy associated-type requirements.
	TypeAliases() []TypeAliasDecl
	// RequirementSignature returns the protocol's own generic signature
	// (its Self-rooted requirements) if already computed, and whether it
	// is available yet. Recursion into self while the signature is still
	// being computed must be cut by the caller checking this flag first.
	RequirementSignature() (reqs []ProtocolRequirement, computed bool)
}

// ProtocolRequirement is one requirement drawn from a protocol's own
// requirement signature, rooted at Self or at a dependent member of Self.
type ProtocolRequirement struct {
	// Subject is the dependent type the requirement applies to, expressed
	// relative to Self (e.g. "Self.Element"); nil means Self itself.
	Subject TypeRepr
	Kind    RequirementKind
	// Protocol is set when Kind == RequirementConformance or RequirementSuperclass
	// names a protocol (as opposed to a class type).
	Protocol ProtocolDecl
	// Superclass/Concrete/Other carries the right-hand side for the other kinds.
	Type TypeRepr
}

// RequirementKind enumerates the four requirement shapes the solver accepts.
type RequirementKind int

const (
	RequirementConformance RequirementKind = iota
	RequirementSuperclass
	RequirementLayout
	RequirementSameType
)

func (k RequirementKind) String() string {
	switch k {
	case RequirementConformance:
		return "conformance"
	case RequirementSuperclass:
		return "superclass"
	case RequirementLayout:
		return "layout"
	case RequirementSameType:
		return "same-type"
	default:
		return "unknown"
	}
}

// AssocTypeDecl is a reference to an associated-type declaration.
type AssocTypeDecl interface {
	Name() string
	Protocol() ProtocolDecl
	// Ordinal gives the declaration order within its protocol, used as a
	// canonical-order tiebreak.
	Ordinal() int
}

// TypeAliasDecl is a reference to a type-alias declaration that might
// satisfy a same-named associated-type requirement.
type TypeAliasDecl interface {
	Name() string
	Module() ModuleRef
	// Protocol is the protocol this alias is declared in (nil for a
	// free-standing alias, which the core never anchors against).
	Protocol() ProtocolDecl
	Ordinal() int
	// Underlying returns the alias's right-hand-side type, with `Self`
	// left unsubstituted; the caller substitutes Self before use.
	Underlying() TypeRepr
}

// Conformance is an external witness that a concrete type conforms to a
// protocol, as produced by LookupConformance.
type Conformance interface {
	Protocol() ProtocolDecl
	ConcreteType() TypeRepr
	// AssociatedTypeWitness resolves the concrete type that satisfies a
	// given associated type under this conformance.
	AssociatedTypeWitness(assoc AssocTypeDecl) (TypeRepr, bool)
}

// SourceLoc is a written source location, used only for diagnostics; the
// zero value means "no location" (an inferred or synthesized fact).
type SourceLoc struct {
	File   string
	Line   int
	Column int
}

// IsValid reports whether loc names an actual source position.
func (loc SourceLoc) IsValid() bool { return loc.File != "" }

func (loc SourceLoc) String() string {
	if !loc.IsValid() {
		return "<synthesized>"
	}
	return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Column)
}

// ConstraintResult is the ternary outcome of every solver entry point: a
// call never panics or returns a Go error for ordinary constraint
// violations, it reports one of these three outcomes and lets the
// diagnostics sink carry detail.
type ConstraintResult int

const (
	// Resolved indicates the fact was recorded (or deferred) without
	// contradicting prior knowledge.
	Resolved ConstraintResult = iota
	// RequirementConcrete indicates the requirement's subject resolved to
	// a concrete type rather than an archetype; rejected, non-fatal.
	RequirementConcrete
	// Conflicting indicates the fact contradicts a previously recorded
	// fact; diagnosed, and the builder keeps the representative constraint.
	Conflicting
)

func (r ConstraintResult) String() string {
	switch r {
	case Resolved:
		return "resolved"
	case RequirementConcrete:
		return "concrete"
	case Conflicting:
		return "conflicting"
	default:
		return "unknown"
	}
}
